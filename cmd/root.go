package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute initializes all commands and will run the cli.
// Any additional commands should be added here.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Version:       os.Getenv("VERSION"),
		Use:           "quiz",
		Long:          "Quiz is a CLI that turns your study notes into quizzes and lets you take them from the terminal.",
		Short:         "Generate and take quizzes from your notes.",
		Example:       "quiz analyze --file notes.pdf",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print debug logs.")

	rootCmd.AddCommand(newURLCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newTakeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())

	return rootCmd
}

// newURLCmd creates a command that prints the Python API url in use.
func newURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url",
		Short: "Print the Python API base url selected by NODE_ENV.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), pythonAPIURL())
			return nil
		},
	}
}
