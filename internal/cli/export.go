package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (a *App) exportCommand() *cobra.Command {
	var (
		month  string
		out    string
		remote bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export flights to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			var (
				name string
				data []byte
				url  string
			)
			if remote {
				resp, err := a.client.ExportRemote(ctx, month)
				if err != nil {
					return err
				}
				name, data, url = resp.Filename, resp.Content, resp.URL
			} else {
				var err error
				name, data, err = a.client.ExportXLSX(ctx, month)
				if err != nil {
					return err
				}
			}

			if out == "" {
				out = name
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write workbook: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", out, len(data))
			if url != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Download: %s\n", url)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Only flights in this month (YYYY-MM)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default flight-log-YYYY-MM.xlsx)")
	cmd.Flags().BoolVar(&remote, "remote", false, "Build the workbook on the server")
	return cmd
}
