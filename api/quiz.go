package api

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
)

// CountPending returns the number of quizzes the user has not taken yet.
func (c *Client) CountPending(ctx context.Context) (int, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/quiz/count-pending", nil)
	if err != nil {
		return 0, err
	}
	var resBody countResponse
	if err := c.do(req, &resBody); err != nil {
		return 0, err
	}
	return resBody.PendingCount, nil
}

// CountIncorrect returns the number of quizzes the user got wrong.
func (c *Client) CountIncorrect(ctx context.Context) (int, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/quiz/count-incorrect", nil)
	if err != nil {
		return 0, err
	}
	var resBody countResponse
	if err := c.do(req, &resBody); err != nil {
		return 0, err
	}
	return resBody.IncorrectCount, nil
}

// Pending returns the pending quizzes grouped by category.
func (c *Client) Pending(ctx context.Context) (*QuizListResponse, error) {
	return c.quizList(ctx, "/api/quiz/pending")
}

// Incorrect returns the quizzes answered wrong, grouped by category.
func (c *Client) Incorrect(ctx context.Context) (*QuizListResponse, error) {
	return c.quizList(ctx, "/api/quiz/incorrect")
}

func (c *Client) quizList(ctx context.Context, path string) (*QuizListResponse, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var resBody QuizListResponse
	if err := c.do(req, &resBody); err != nil {
		return nil, err
	}
	return &resBody, nil
}

// Submit stores the answer of a quiz. The topic is closed by the server once
// QuestionIndex reaches TotalIndex.
func (c *Client) Submit(ctx context.Context, submission SubmitRequest) (*SubmitResponse, error) {
	if err := c.validate.Struct(submission); err != nil {
		log.Errorf("One or more fields are invalid: %v\n", err)
		return nil, err
	}
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/quiz/submit", submission)
	if err != nil {
		return nil, err
	}
	var resBody SubmitResponse
	if err := c.do(req, &resBody); err != nil {
		return nil, err
	}
	return &resBody, nil
}
