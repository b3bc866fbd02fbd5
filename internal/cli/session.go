package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tasksync/internal/session"
)

type credentialOptions struct {
	Username string
	Password string
}

func addCredentialArgs(cmd *cobra.Command, o *credentialOptions) {
	cmd.Flags().StringVarP(&o.Username, "username", "u", "", "Account username.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Account password. Read from stdin when omitted.")
	_ = cmd.MarkFlagRequired("username")
}

// input returns the sign-in input, reading the password from in when it was
// not given as a flag.
func (o *credentialOptions) input(in io.Reader) (session.SignInInput, error) {
	password := o.Password
	if password == "" {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return session.SignInInput{}, fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	return session.SignInInput{Username: o.Username, Password: password}, nil
}

func addRegister(topLevel *cobra.Command, rt *runtime) {
	o := &credentialOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account on the task backend.",
		Example: `
tasksync register -u alice
echo secret | tasksync register -u alice
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := o.input(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := rt.wire(); err != nil {
				return err
			}
			if err := rt.app.Session.Register(cmd.Context(), input); err != nil {
				return err
			}
			return rt.printer(cmd).message("Registered %s. Run `tasksync login -u %s` to sign in.", input.Username, input.Username)
		},
	}
	addCredentialArgs(cmd, o)
	topLevel.AddCommand(cmd)
}

func addLogin(topLevel *cobra.Command, rt *runtime) {
	o := &credentialOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the issued credential.",
		Example: `
tasksync login -u alice
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := o.input(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := rt.wire(); err != nil {
				return err
			}
			if err := rt.app.Session.SignIn(cmd.Context(), input); err != nil {
				return err
			}
			return rt.printer(cmd).status(rt.app.Session.Status())
		},
	}
	addCredentialArgs(cmd, o)
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored credential.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.wire(); err != nil {
				return err
			}
			if err := rt.app.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			return rt.printer(cmd).status(rt.app.Session.Status())
		},
	}
	topLevel.AddCommand(cmd)
}

func addStatus(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Verify the stored credential and show the session state.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := rt.connect(cmd.Context())
			if err != nil {
				return err
			}
			if err := rt.printer(cmd).status(st); err != nil {
				return err
			}
			if st == session.StatusInvalid {
				return rt.app.Session.Acknowledge(cmd.Context())
			}
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addRetry(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "retry",
		Short: "Verify the stored credential again after the backend was unreachable.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := rt.connect(cmd.Context())
			if err != nil {
				return err
			}
			if st == session.StatusUnreachable {
				if st, err = rt.app.Session.RetryVerification(cmd.Context()); err != nil {
					return err
				}
			}
			if err := rt.printer(cmd).status(st); err != nil {
				return err
			}
			switch st {
			case session.StatusUnreachable:
				return errUnreachable
			case session.StatusInvalid:
				_ = rt.app.Session.Acknowledge(cmd.Context())
				return errExpired
			}
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
