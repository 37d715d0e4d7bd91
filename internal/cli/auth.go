package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tresahq/cashbook_cli/internal/dto"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(forgotPasswordCmd)
	rootCmd.AddCommand(resetPasswordCmd)

	loginCmd.Flags().StringP("email", "e", "", "Account email")
	loginCmd.Flags().StringP("password", "p", "", "Account password")

	registerCmd.Flags().StringP("email", "e", "", "Account email")
	registerCmd.Flags().StringP("password", "p", "", "Account password (min 8 characters)")
	registerCmd.Flags().String("first-name", "", "First name")
	registerCmd.Flags().String("last-name", "", "Last name")

	forgotPasswordCmd.Flags().StringP("email", "e", "", "Account email")
	resetPasswordCmd.Flags().StringP("token", "t", "", "Reset token from the email")
	resetPasswordCmd.Flags().StringP("password", "p", "", "New password (min 8 characters)")
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	RunE:  runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	user, expiry, err := current.client.Login(cmd.Context(), dto.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	if err := current.session.SetUser(*user, expiry); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Signed in as %s (%s)\n", user.FullName(), user.Email)
	return nil
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE:  runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")

	user, expiry, err := current.client.Register(cmd.Context(), dto.RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return err
	}
	if err := current.session.SetUser(*user, expiry); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Account created. Signed in as %s\n", user.Email)
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local session",
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	// Best effort server side; the local session is cleared regardless so a
	// dead server cannot strand a stale login.
	if err := current.client.Logout(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: server logout failed: %s\n", renderError(err))
	}
	if err := current.session.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Signed out.")
	return nil
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Start the password-reset flow",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		if err := current.client.ForgotPassword(cmd.Context(), dto.ForgotPasswordRequest{Email: email}); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "If that account exists, a reset email is on its way.")
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Complete the password-reset flow",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("token")
		password, _ := cmd.Flags().GetString("password")
		if err := current.client.ResetPassword(cmd.Context(), dto.ResetPasswordRequest{Token: token, Password: password}); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Password updated. Sign in with 'cashbookctl login'.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user and active workspace",
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	sess := current.session.Current()
	if sess.User == nil {
		fmt.Fprintln(os.Stdout, "Not signed in.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "User:      %s (%s)\n", sess.User.FullName(), sess.User.Email)
	fmt.Fprintf(os.Stdout, "Workspace: %s\n", dash(sess.ActiveWorkspaceID))
	if !sess.TokenExpiry.IsZero() {
		state := "valid until"
		if time.Now().After(sess.TokenExpiry) {
			state = "expired at"
		}
		fmt.Fprintf(os.Stdout, "Token:     %s %s\n", state, sess.TokenExpiry.Format(time.RFC3339))
	}
	return nil
}
