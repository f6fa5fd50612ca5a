package models

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang-jwt/jwt/v5"
	"github.com/juancwu/quiz-cli/api"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// press feeds msgs into the model in order and returns the last command.
func press(m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func multipleChoiceQuiz() api.Quiz {
	return api.Quiz{
		QuizId:        "technology-mc-240702-193156",
		TopicId:       "technology-240702-193156",
		Category:      "기술",
		QuizType:      api.QUIZ_TYPE_MULTIPLE_CHOICE,
		Question:      "Which switch is linear?",
		Options:       []string{"Blue", "Brown", "Clear", "Red"},
		CorrectAnswer: 3,
		Explanation:   "Red switches are linear.",
	}
}

func TestQuestionModelNavigateAndChoose(t *testing.T) {
	m, cmd := press(InitQuestionModel(multipleChoiceQuiz(), 1, 2),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if isQuit(cmd) {
		t.Fatal("Choosing an answer should not quit before the explanation is shown")
	}
	qm := m.(QuestionModel)
	chosen, ok := qm.Chosen()
	if !ok || chosen != 3 {
		t.Fatalf("Chosen() = %d, %v, expected 3, true", chosen, ok)
	}
	if !qm.Correct() {
		t.Error("Expected the answer to be correct")
	}
	view := qm.View()
	if !strings.Contains(view, "Correct!") || !strings.Contains(view, "Red switches are linear.") {
		t.Errorf("View should reveal the result and the explanation, got:\n%s", view)
	}

	m, cmd = press(m, keyRunes("x"))
	if !isQuit(cmd) || !m.(QuestionModel).Done() {
		t.Error("Any key after answering should finish the question")
	}
}

func TestQuestionModelWrapsAround(t *testing.T) {
	m, _ := press(InitQuestionModel(multipleChoiceQuiz(), 1, 1),
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if chosen, _ := m.(QuestionModel).Chosen(); chosen != 3 {
		t.Errorf("Moving up from the first option should wrap to the last, got %d", chosen)
	}
}

func TestQuestionModelNumberKeys(t *testing.T) {
	quiz := api.Quiz{
		QuizType:      api.QUIZ_TYPE_OX,
		Question:      "Linear switches click.",
		Options:       []string{"O", "X"},
		CorrectAnswer: 1,
	}
	m, _ := press(InitQuestionModel(quiz, 2, 2), keyRunes("9"))
	if _, ok := m.(QuestionModel).Chosen(); ok {
		t.Fatal("Out of range numbers should be ignored")
	}
	m, _ = press(m, keyRunes("1"))
	qm := m.(QuestionModel)
	if chosen, ok := qm.Chosen(); !ok || chosen != 0 {
		t.Fatalf("Chosen() = %d, %v, expected 0, true", chosen, ok)
	}
	if qm.Correct() {
		t.Error("Expected the answer to be incorrect")
	}
	if !strings.Contains(qm.View(), "Incorrect.") {
		t.Errorf("View should say the answer is incorrect, got:\n%s", qm.View())
	}
}

func TestQuestionModelAbort(t *testing.T) {
	m, cmd := press(InitQuestionModel(multipleChoiceQuiz(), 1, 1), tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) || !m.(QuestionModel).Aborted() {
		t.Error("ESC should abort the question")
	}
	if _, ok := m.(QuestionModel).Chosen(); ok {
		t.Error("Aborted question should not have an answer")
	}
}

func TestValidateToken(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	if err := validateToken(token); err != nil {
		t.Errorf("Expected valid token, got %v", err)
	}
	if err := validateToken("  " + token + "\n"); err != nil {
		t.Errorf("Surrounding whitespace should be ignored, got %v", err)
	}
	if err := validateToken(""); err == nil {
		t.Error("Expected an error for an empty token")
	}
	if err := validateToken("definitely-not-a-jwt"); err == nil {
		t.Error("Expected an error for a malformed token")
	}
}

func TestTokenModel(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user"}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	m, cmd := press(InitTokenModel(), keyRunes("garbage"), tea.KeyMsg{Type: tea.KeyEnter})
	if isQuit(cmd) {
		t.Fatal("Invalid token should keep the prompt open")
	}
	if !strings.Contains(m.View(), "Invalid token") {
		t.Errorf("View should show the validation error, got:\n%s", m.View())
	}
	if m.(TokenModel).Token() != "" {
		t.Error("Token should be empty until the prompt completes")
	}

	m, cmd = press(InitTokenModel(), keyRunes(token), tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Fatal("Valid token should complete the prompt")
	}
	if got := m.(TokenModel).Token(); got != token {
		t.Errorf("Token() = %q, expected %q", got, token)
	}

	m, cmd = press(InitTokenModel(), tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) || !m.(TokenModel).Aborted() {
		t.Error("Ctrl+C should abort the prompt")
	}
}
