package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/juancwu/quiz-cli/api"
	"github.com/juancwu/quiz-cli/config"
	"github.com/juancwu/quiz-cli/util"
)

// overridden in tests
var (
	pythonAPIURL = config.GetPythonAPIURL
	configDir    = config.ConfigDir
)

func loadCredentials() (*config.Credentials, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	return config.LoadCredentialsFrom(dir)
}

// newClient creates a Python API client with the stored access token.
// With requireAuth a missing, invalid or expired token is an error, otherwise
// the client falls back to unauthenticated requests.
func newClient(requireAuth bool) (*api.Client, error) {
	baseURL := pythonAPIURL()

	creds, err := loadCredentials()
	if err != nil {
		if !requireAuth && errors.Is(err, config.ErrNoCredentials) {
			return api.New(baseURL, ""), nil
		}
		return nil, err
	}

	expired, err := util.IsTokenExpired(creds.AccessToken)
	if err != nil {
		log.Debug("Failed to parse stored access token", "err", err)
		if !requireAuth {
			log.Warn("Stored access token is invalid, sending request without it.")
			return api.New(baseURL, ""), nil
		}
		return nil, ErrInvalidCreds
	}
	if expired {
		if !requireAuth {
			log.Warn("Stored access token is expired, sending request without it.")
			return api.New(baseURL, ""), nil
		}
		return nil, newErrExpiredCreds()
	}

	return api.New(baseURL, creds.AccessToken), nil
}

// fetchQuizzes gets either the pending or the incorrect quizzes.
func fetchQuizzes(ctx context.Context, c *api.Client, incorrect bool) (*api.QuizListResponse, error) {
	if incorrect {
		return c.Incorrect(ctx)
	}
	return c.Pending(ctx)
}

// quizKind names the list for messages.
func quizKind(incorrect bool) string {
	if incorrect {
		return "incorrect"
	}
	return "pending"
}

// filterGroups keeps the groups of the given category. An empty category keeps everything.
func filterGroups(groups []api.CategoryGroup, category string) ([]api.CategoryGroup, error) {
	if category == "" {
		return groups, nil
	}
	var filtered []api.CategoryGroup
	for _, g := range groups {
		if g.Category == category {
			filtered = append(filtered, g)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("No quizzes found for category %q.", category)
	}
	return filtered, nil
}

// answer is what the user did with one question.
type answer struct {
	Choice   int
	Answered bool
	// Stop ends the session after this question.
	Stop bool
}

// askFunc presents quiz to the user. position and total are 1-based over the whole session.
type askFunc func(quiz api.Quiz, position, total int) (answer, error)

type takeSummary struct {
	Answered int
	Correct  int
	Total    int
}

// takeQuizzes asks every question of groups and submits each answer.
// The Python API closes a topic once questionIndex equals totalIndex, so both
// are counted per topic id inside the group.
func takeQuizzes(ctx context.Context, c *api.Client, groups []api.CategoryGroup, ask askFunc) (takeSummary, error) {
	var summary takeSummary
	for _, g := range groups {
		summary.Total += len(g.Questions)
	}

	position := 0
	for _, g := range groups {
		topicTotals := make(map[string]int)
		for _, q := range g.Questions {
			topicTotals[topicIdOf(q, g)]++
		}
		topicSeen := make(map[string]int)

		for _, q := range g.Questions {
			position++
			topicId := topicIdOf(q, g)
			topicSeen[topicId]++

			a, err := ask(q, position, summary.Total)
			if err != nil {
				return summary, err
			}
			if !a.Answered {
				return summary, nil
			}

			result := api.RESULT_FAIL
			if a.Choice == q.CorrectAnswer {
				result = api.RESULT_SUCCESS
				summary.Correct++
			}
			_, err = c.Submit(ctx, api.SubmitRequest{
				QuizId:        q.QuizId,
				TopicId:       topicId,
				UserChoice:    a.Choice,
				Result:        result,
				QuestionIndex: topicSeen[topicId],
				TotalIndex:    topicTotals[topicId],
			})
			if err != nil {
				return summary, err
			}
			summary.Answered++
			log.Debug("Submitted answer", "quiz_id", q.QuizId, "result", result)

			if a.Stop {
				return summary, nil
			}
		}
	}
	return summary, nil
}

func topicIdOf(q api.Quiz, g api.CategoryGroup) string {
	if q.TopicId != "" {
		return q.TopicId
	}
	return g.TopicId
}
