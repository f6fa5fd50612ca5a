package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/juancwu/quiz-cli/config"
	"github.com/juancwu/quiz-cli/util"
	"github.com/spf13/cobra"
)

// newAuthCmd creates a new auth command and all its subcommands.
func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication related actions.",
	}
	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newLogoutCmd())
	cmd.AddCommand(newWhoamiCmd())
	return cmd
}

// newLoginCmd creates a new command to store the access token used against the Python API.
// The token comes from the quiz web app. It is saved in the user's config path "$HOME/.config/quiz".
func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save an access token to use the Python API.",
		Long:  "Save an access token to use the Python API. The token is read from --token, a masked prompt, or the first line of stdin when piped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := cmd.Flags().GetString("token")
			if err != nil {
				return fmt.Errorf("failed to get token flag: %w", err)
			}
			if token == "" {
				token, err = promptToken(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}

			expired, err := util.IsTokenExpired(token)
			if err != nil {
				return fmt.Errorf("Invalid access token: %w", err)
			}
			if expired {
				return errors.New("The access token is already expired. Get a new one from the quiz web app.")
			}

			dir, err := configDir()
			if err != nil {
				return err
			}
			c := &config.Credentials{
				Email:       util.TokenEmail(token),
				AccessToken: token,
			}
			if err := config.SaveCredentialsTo(dir, c); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			util.LogWarn(out, fmt.Sprintf("credentials were saved in %s. If you do not wish them to be there remove them with `quiz auth logout`.", config.ConfigPath(dir)))
			if c.Email != "" {
				util.LogSuccess(out, fmt.Sprintf("Successfully signed in as: %s", c.Email))
			} else {
				util.LogSuccess(out, "Successfully signed in.")
			}
			return nil
		},
	}
	cmd.Flags().String("token", "", "Optional: The access token. Use this flag to skip the prompt.")
	return cmd
}

// newLogoutCmd creates a command that removes the stored credentials.
func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := configDir()
			if err != nil {
				return err
			}
			if err := config.RemoveCredentialsFrom(dir); err != nil {
				return err
			}
			util.LogSuccess(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

// newWhoamiCmd creates a command that prints who the stored token belongs to.
func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the user of the stored access token.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := loadCredentials()
			if err != nil {
				return err
			}
			sub, err := util.TokenSubject(creds.AccessToken)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "User ID: %s\n", sub)
			if creds.Email != "" {
				fmt.Fprintf(out, "Email: %s\n", creds.Email)
			}
			exp, err := util.TokenExpiration(creds.AccessToken)
			if err != nil {
				return err
			}
			switch {
			case exp.IsZero():
				fmt.Fprintln(out, "Expires: never")
			case time.Now().After(exp):
				util.LogApiResponseErrs(out, fmt.Sprintf("Token expired at %s", exp.Format(time.RFC3339)))
			default:
				fmt.Fprintf(out, "Expires: %s\n", exp.Format(time.RFC3339))
			}
			return nil
		},
	}
}
