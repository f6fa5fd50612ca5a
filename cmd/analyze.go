package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/juancwu/quiz-cli/api"
	"github.com/juancwu/quiz-cli/text"
	"github.com/juancwu/quiz-cli/util"
	"github.com/spf13/cobra"
)

// newAnalyzeCmd creates a command that generates quizzes out of text or a PDF.
func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Generate quizzes from text or a PDF.",
		Long: "Generate quizzes from text or a PDF. Quizzes are only saved when signed in. " +
			"Use --ocr for scanned PDFs without a text layer. Pass --text - to read the text from stdin.",
		Example: "quiz analyze --file notes.pdf\nquiz analyze --file scan.pdf --ocr\ncat notes.txt | quiz analyze --text -",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := cmd.Flags().GetString("text")
			if err != nil {
				return fmt.Errorf("failed to get text flag: %w", err)
			}
			path, err := cmd.Flags().GetString("file")
			if err != nil {
				return fmt.Errorf("failed to get file flag: %w", err)
			}
			ocr, err := cmd.Flags().GetBool("ocr")
			if err != nil {
				return fmt.Errorf("failed to get ocr flag: %w", err)
			}
			if ocr && path == "" {
				return errors.New("--ocr can only be used with --file.")
			}

			c, err := newClient(false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			var res *api.AnalyzeResponse
			if path != "" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				if ocr {
					res, err = c.AnalyzeOCR(cmd.Context(), path, f)
				} else {
					res, err = c.AnalyzeFile(cmd.Context(), path, f)
				}
				if err != nil {
					return err
				}
			} else {
				if input == "-" {
					b, err := io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return err
					}
					input = string(b)
				}
				res, err = c.AnalyzeText(cmd.Context(), util.NormalizeText(input))
				if err != nil {
					return err
				}
			}

			printAnalysis(out, res)
			if c.AccessToken == "" {
				util.LogWarn(out, "not signed in, the generated quizzes were not saved. Use `quiz auth login` first.")
			}
			return nil
		},
	}
	cmd.Flags().StringP("text", "t", "", "Text to generate quizzes from.")
	cmd.Flags().StringP("file", "f", "", "Path of a PDF to generate quizzes from.")
	cmd.Flags().Bool("ocr", false, "Run OCR on the PDF instead of reading its text layer.")
	cmd.MarkFlagsMutuallyExclusive("text", "file")
	cmd.MarkFlagsOneRequired("text", "file")
	return cmd
}

// printAnalysis prints every generated topic and its questions.
func printAnalysis(w io.Writer, res *api.AnalyzeResponse) {
	for _, topic := range res.Result.Topics {
		fmt.Fprintf(w, "%s %s\n", text.Bold(topic.Title), text.Foreground(text.FAINT, "("+topic.Category+")"))
		if topic.Description != "" {
			fmt.Fprintf(w, "  %s\n", topic.Description)
		}
		for i, q := range topic.Questions {
			fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, q.Type, q.Question)
		}
	}
	fmt.Fprintf(w, "Total questions: %d\n", res.TotalQuestion)
}
