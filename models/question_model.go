package models

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/juancwu/quiz-cli/api"
)

// QuestionModel asks a single quiz question and reveals the answer once chosen.
type QuestionModel struct {
	quiz     api.Quiz
	position int
	total    int
	cursor   int
	chosen   int
	done     bool
	aborted  bool
}

// InitQuestionModel creates the model for quiz. position and total are 1-based
// and only used for the header.
func InitQuestionModel(quiz api.Quiz, position, total int) QuestionModel {
	return QuestionModel{
		quiz:     quiz,
		position: position,
		total:    total,
		chosen:   -1,
	}
}

func (m QuestionModel) Init() tea.Cmd {
	return nil
}

func (m QuestionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Type == tea.KeyCtrlC || key.Type == tea.KeyEsc {
		m.aborted = true
		return m, tea.Quit
	}

	// answer revealed, any key continues
	if m.chosen >= 0 {
		m.done = true
		return m, tea.Quit
	}

	n := len(m.quiz.Options)
	if n == 0 {
		return m, nil
	}

	switch key.String() {
	case "up", "k", "shift+tab":
		// loop
		m.cursor = (m.cursor - 1 + n) % n
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % n
	case "enter", " ":
		m.chosen = m.cursor
	default:
		if i, err := strconv.Atoi(key.String()); err == nil && i >= 1 && i <= n {
			m.cursor = i - 1
			m.chosen = m.cursor
		}
	}
	return m, nil
}

func (m QuestionModel) View() string {
	var builder strings.Builder

	builder.WriteString(headerStyle.Render(fmt.Sprintf("[%d/%d] %s", m.position, m.total, m.quiz.Category)))
	builder.WriteString("\n\n")
	builder.WriteString(questionStyle.Render(m.quiz.Question))
	builder.WriteString("\n\n")

	for i, option := range m.quiz.Options {
		line := fmt.Sprintf("%d. %s", i+1, option)
		switch {
		case m.chosen >= 0 && i == m.quiz.CorrectAnswer:
			builder.WriteString("  " + correctStyle.Render(line))
		case m.chosen >= 0 && i == m.chosen:
			builder.WriteString("  " + errStyle.Render(line))
		case m.chosen < 0 && i == m.cursor:
			builder.WriteString("> " + selectedStyle.Render(line))
		default:
			builder.WriteString("  " + line)
		}
		builder.WriteString("\n")
	}

	if m.chosen >= 0 {
		builder.WriteString("\n")
		if m.Correct() {
			builder.WriteString(correctStyle.Render("Correct!"))
		} else {
			builder.WriteString(errStyle.Render("Incorrect."))
		}
		builder.WriteString("\n")
		if m.quiz.Explanation != "" {
			builder.WriteString(m.quiz.Explanation + "\n")
		}
		builder.WriteString(helpStyle.Render("\nPress any key to continue, ESC to stop.") + "\n")
	} else {
		builder.WriteString(helpStyle.Render("\nUse arrow keys or numbers to pick an answer, enter to confirm, ESC to stop.") + "\n")
	}

	return builder.String()
}

// Chosen returns the selected option index and whether the question was answered.
func (m QuestionModel) Chosen() (int, bool) {
	return m.chosen, m.chosen >= 0
}

// Correct reports whether the chosen option is the correct answer.
func (m QuestionModel) Correct() bool {
	return m.chosen >= 0 && m.chosen == m.quiz.CorrectAnswer
}

func (m QuestionModel) Aborted() bool {
	return m.aborted
}

func (m QuestionModel) Done() bool {
	return m.done
}
