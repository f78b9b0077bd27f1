package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/flightlog/internal/models"
)

func (a *App) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or set display names",
	}

	get := &cobra.Command{
		Use:   "get [USER_ID]",
		Short: "Show your profile, or another user's",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			var (
				profile *models.UserProfile
				err     error
			)
			if len(args) == 1 {
				profile, err = a.client.UserProfile(ctx, args[0])
			} else {
				profile, err = a.client.Profile(ctx)
			}
			if err != nil {
				return err
			}
			if profile == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "(no profile)")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), profile.Name)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set NAME...",
		Short: "Set your display name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			name := strings.Join(args, " ")
			if err := a.client.SaveProfile(ctx, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved: %s\n", strings.TrimSpace(name))
			return nil
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}

func (a *App) roleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Show your role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			role, err := a.client.Role(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), role)
			return nil
		},
	}

	assign := &cobra.Command{
		Use:   "assign USER_ID ROLE",
		Short: "Change a user's role (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			role := models.Role(strings.ToLower(args[1]))
			if err := a.client.AssignRole(ctx, args[0], role); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s to %s\n", role, args[0])
			return nil
		},
	}

	cmd.AddCommand(assign)
	return cmd
}
