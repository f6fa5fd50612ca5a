package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// labeledInput is a bubbles textinput with its label and the last validation error.
type labeledInput struct {
	Input    textinput.Model
	Label    string
	Err      error
	Validate textinput.ValidateFunc
}

// TokenModel prompts for an access token without echoing it.
type TokenModel struct {
	input   labeledInput
	done    bool
	aborted bool
}

func InitTokenModel() TokenModel {
	tokenInput := textinput.New()
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.Placeholder = "eyJhbGciOi..."
	tokenInput.Focus()

	return TokenModel{
		input: labeledInput{
			Input:    tokenInput,
			Label:    "Access token",
			Validate: validateToken,
		},
	}
}

func (m TokenModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m TokenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.input.Err = m.input.Validate(m.input.Input.Value())
			if m.input.Err != nil {
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input.Input, cmd = m.input.Input.Update(msg)
	return m, cmd
}

func (m TokenModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var builder strings.Builder
	builder.WriteString("Paste the access token from the quiz web app.\n\n")
	builder.WriteString(fmt.Sprintf("%s %s\n", m.input.Label, m.input.Input.View()))
	if m.input.Err != nil {
		builder.WriteString(errStyle.Render(m.input.Err.Error()) + "\n")
	}
	builder.WriteString(helpStyle.Render("\nPress ESC to quit.") + "\n")
	return builder.String()
}

// Token returns the entered token. It is empty unless the prompt completed.
func (m TokenModel) Token() string {
	if !m.done {
		return ""
	}
	return strings.TrimSpace(m.input.Input.Value())
}

func (m TokenModel) Aborted() bool {
	return m.aborted
}
