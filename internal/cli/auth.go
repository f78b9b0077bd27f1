package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/flightlog/pkg/api"
)

func (a *App) registerCommand() *cobra.Command {
	var pw string
	cmd := &cobra.Command{
		Use:   "register EMAIL",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := password(cmd.ErrOrStderr(), pw)
			if err != nil {
				return err
			}
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			user, err := a.client.Register(ctx, args[0], secret)
			if err != nil {
				return err
			}
			return a.loggedIn(cmd, user)
		},
	}
	cmd.Flags().StringVar(&pw, "password", "", "Password (prompted when empty)")
	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var pw string
	cmd := &cobra.Command{
		Use:   "login EMAIL",
		Short: "Log in and save the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := password(cmd.ErrOrStderr(), pw)
			if err != nil {
				return err
			}
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			user, err := a.client.Login(ctx, args[0], secret)
			if err != nil {
				return err
			}
			return a.loggedIn(cmd, user)
		},
	}
	cmd.Flags().StringVar(&pw, "password", "", "Password (prompted when empty)")
	return cmd
}

func (a *App) loggedIn(cmd *cobra.Command, user *api.User) error {
	if err := a.token.Save(a.client.Token()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Email, user.Role)

	ctx, cancel := a.requestContext(cmd)
	defer cancel()
	profile, err := a.client.Profile(ctx)
	if err != nil {
		return err
	}
	if profile == nil {
		fmt.Fprintln(cmd.OutOrStdout(), `No profile yet. Set your name with "flightlog profile set NAME".`)
	}
	return nil
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			if err := a.client.Logout(ctx); err != nil {
				return err
			}
			if err := a.token.Save(""); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (a *App) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			user, err := a.client.CurrentUser(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", user.ID, user.Email, user.Role)
			return nil
		},
	}
}
