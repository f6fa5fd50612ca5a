package cmd

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/juancwu/quiz-cli/models"
	"golang.org/x/term"
)

// isInteractive reports whether r is a terminal the TUI can read from.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readLine reads the first line of r without the trailing newline.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptToken asks for the access token. A terminal gets a masked prompt,
// anything else is read as a single line.
func promptToken(in io.Reader, out io.Writer) (string, error) {
	if !isInteractive(in) {
		return readLine(in)
	}
	final, err := tea.NewProgram(models.InitTokenModel(), tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return "", err
	}
	m := final.(models.TokenModel)
	if m.Aborted() {
		return "", errors.New("Login cancelled.")
	}
	return m.Token(), nil
}
