package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/flightlog/internal/models"
)

func (a *App) categoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cat"},
		Short:   "Manage students, instructors, aircraft and exercises",
	}

	list := &cobra.Command{
		Use:   "list TYPE",
		Short: "List the items of one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := models.ParseCategoryType(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			names, err := a.client.Categories(ctx, t)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add TYPE NAME",
		Short: "Add an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := models.ParseCategoryType(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			if err := a.client.AddCategory(ctx, t, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q\n", t, args[1])
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete TYPE NAME",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := models.ParseCategoryType(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			if err := a.client.DeleteCategory(ctx, t, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %q\n", t, args[1])
			return nil
		},
	}

	rename := &cobra.Command{
		Use:   "rename TYPE OLD NEW",
		Short: "Rename an item; logged flights keep the old name",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := models.ParseCategoryType(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			if err := a.client.RenameCategory(ctx, t, args[1], args[2]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s %q to %q\n", t, args[1], args[2])
			return nil
		},
	}

	cmd.AddCommand(list, add, del, rename)
	return cmd
}
