package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/juancwu/quiz-cli/api"
	"github.com/juancwu/quiz-cli/models"
	"github.com/juancwu/quiz-cli/text"
	"github.com/spf13/cobra"
)

// newCountCmd creates a command that prints how many quizzes are pending or incorrect.
func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count pending quizzes. Use --incorrect to count the ones answered wrong.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			incorrect, err := cmd.Flags().GetBool("incorrect")
			if err != nil {
				return fmt.Errorf("failed to get incorrect flag: %w", err)
			}
			c, err := newClient(true)
			if err != nil {
				return err
			}

			var n int
			if incorrect {
				n, err = c.CountIncorrect(cmd.Context())
			} else {
				n, err = c.CountPending(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s quizzes: %d\n", quizKindTitle(incorrect), n)
			return nil
		},
	}
	cmd.Flags().Bool("incorrect", false, "Count quizzes answered wrong instead of pending ones.")
	return cmd
}

// newListCmd creates a command that lists the quizzes grouped by category.
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending quizzes by category. Use --incorrect to list the ones answered wrong.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			incorrect, err := cmd.Flags().GetBool("incorrect")
			if err != nil {
				return fmt.Errorf("failed to get incorrect flag: %w", err)
			}
			c, err := newClient(true)
			if err != nil {
				return err
			}
			res, err := fetchQuizzes(cmd.Context(), c, incorrect)
			if err != nil {
				return err
			}
			printQuizGroups(cmd.OutOrStdout(), res.Result, incorrect)
			return nil
		},
	}
	cmd.Flags().Bool("incorrect", false, "List quizzes answered wrong instead of pending ones.")
	return cmd
}

// printQuizGroups renders the groups as a table.
func printQuizGroups(w io.Writer, groups []api.CategoryGroup, incorrect bool) {
	if len(groups) == 0 {
		fmt.Fprintf(w, "No %s quizzes.\n", quizKind(incorrect))
		return
	}

	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(w)
	outputTable.AppendHeader(table.Row{"Category", "Topic", "Multiple choice", "O/X", "Total"})

	total := 0
	for _, g := range groups {
		mc, ox := 0, 0
		for _, q := range g.Questions {
			if q.QuizType == api.QUIZ_TYPE_OX {
				ox++
			} else {
				mc++
			}
		}
		total += len(g.Questions)
		outputTable.AppendRow(table.Row{g.Category, g.TopicId, mc, ox, len(g.Questions)})
	}
	outputTable.AppendFooter(table.Row{"", "", "", "", total})
	outputTable.Render()
}

// newTakeCmd creates a command to answer quizzes interactively.
func newTakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "take",
		Short: "Take pending quizzes in the terminal. Use --incorrect to retry the ones answered wrong.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			incorrect, err := cmd.Flags().GetBool("incorrect")
			if err != nil {
				return fmt.Errorf("failed to get incorrect flag: %w", err)
			}
			category, err := cmd.Flags().GetString("category")
			if err != nil {
				return fmt.Errorf("failed to get category flag: %w", err)
			}

			c, err := newClient(true)
			if err != nil {
				return err
			}
			res, err := fetchQuizzes(cmd.Context(), c, incorrect)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(res.Result) == 0 {
				fmt.Fprintf(out, "No %s quizzes.\n", quizKind(incorrect))
				return nil
			}
			groups, err := filterGroups(res.Result, category)
			if err != nil {
				return err
			}

			summary, err := takeQuizzes(cmd.Context(), c, groups, askWithProgram(cmd.InOrStdin(), out))
			if err != nil {
				return err
			}
			printSummary(out, summary)
			return nil
		},
	}
	cmd.Flags().Bool("incorrect", false, "Retry quizzes answered wrong instead of pending ones.")
	cmd.Flags().StringP("category", "c", "", "Optional: Only take quizzes of this category.")
	return cmd
}

// askWithProgram runs the question TUI for every quiz.
func askWithProgram(in io.Reader, out io.Writer) askFunc {
	return func(quiz api.Quiz, position, total int) (answer, error) {
		final, err := tea.NewProgram(models.InitQuestionModel(quiz, position, total), tea.WithInput(in), tea.WithOutput(out)).Run()
		if err != nil {
			return answer{}, err
		}
		m := final.(models.QuestionModel)
		choice, ok := m.Chosen()
		return answer{Choice: choice, Answered: ok, Stop: m.Aborted()}, nil
	}
}

func printSummary(w io.Writer, s takeSummary) {
	if s.Answered == 0 {
		fmt.Fprintln(w, "No answers submitted.")
		return
	}
	score := fmt.Sprintf("%d/%d correct", s.Correct, s.Answered)
	switch {
	case s.Correct == s.Answered:
		score = text.Foreground(text.GREEN, score)
	case s.Correct == 0:
		score = text.Foreground(text.RED, score)
	default:
		score = text.Foreground(text.YELLOW, score)
	}
	fmt.Fprintf(w, "Answered %d of %d quizzes, %s.\n", s.Answered, s.Total, score)
}

func quizKindTitle(incorrect bool) string {
	if incorrect {
		return "Incorrect"
	}
	return "Pending"
}
