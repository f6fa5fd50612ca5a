package api

const (
	QUIZ_TYPE_MULTIPLE_CHOICE = "multiple_choice"
	QUIZ_TYPE_OX              = "ox"

	RESULT_SUCCESS = "success"
	RESULT_FAIL    = "fail"

	STATUS_PENDING = "pending"
	STATUS_DONE    = "done"
)

// Quiz is a stored quiz row as returned by the pending and incorrect endpoints.
type Quiz struct {
	QuizId        string   `json:"quiz_id"`
	TopicId       string   `json:"topic_id"`
	UserId        string   `json:"user_id,omitempty"`
	Category      string   `json:"category"`
	QuizType      string   `json:"quiz_type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	QuizStatus    string   `json:"quiz_status,omitempty"`
	TopicStatus   string   `json:"topic_status,omitempty"`
	Result        string   `json:"result,omitempty"`
	YourChoice    *int     `json:"your_choice,omitempty"`
	ExamDate      string   `json:"exam_date,omitempty"`
}

// CategoryGroup is a set of quizzes of one category, grouped by the server.
type CategoryGroup struct {
	Category  string `json:"category"`
	TopicId   string `json:"topic_id"`
	Questions []Quiz `json:"questions"`
}

// Question is a generated question inside an analysis result.
type Question struct {
	QuizId        string   `json:"quiz_id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Topic is a generated topic inside an analysis result.
type Topic struct {
	TopicId     string     `json:"topic_id"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

type AnalysisResult struct {
	Topics []Topic `json:"topics"`
}

// AnalyzeResponse is the response body of every analyze endpoint.
type AnalyzeResponse struct {
	Success       bool           `json:"success"`
	Result        AnalysisResult `json:"result"`
	TotalQuestion int            `json:"total_question"`
}

// QuizListResponse is the response body of the pending and incorrect endpoints.
// Only one of the counts is set depending on the endpoint.
type QuizListResponse struct {
	Success        bool            `json:"success"`
	Result         []CategoryGroup `json:"result"`
	PendingCount   int             `json:"pending_count,omitempty"`
	IncorrectCount int             `json:"incorrect_count,omitempty"`
}

type countResponse struct {
	Success        bool `json:"success"`
	PendingCount   int  `json:"pending_count"`
	IncorrectCount int  `json:"incorrect_count"`
}

// SubmitRequest is the JSON body the submit endpoint requires.
type SubmitRequest struct {
	QuizId        string `json:"quizId" validate:"required,max=50"`
	TopicId       string `json:"topicId" validate:"required,max=50"`
	UserChoice    int    `json:"userChoice" validate:"min=0"`
	Result        string `json:"result" validate:"required,oneof=success fail"`
	QuestionIndex int    `json:"questionIndex" validate:"min=1,ltefield=TotalIndex"`
	TotalIndex    int    `json:"totalIndex" validate:"min=1"`
}

type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type analyzeTextRequest struct {
	Text string `json:"text" validate:"required"`
}

// errorResponse is the body the Python API sends on failures.
type errorResponse struct {
	Error string `json:"error"`
}
