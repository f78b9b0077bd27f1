// Package cli implements the flightlog command line client.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/flightlog/internal/client"
	"github.com/mmynk/flightlog/internal/config"
	"github.com/mmynk/flightlog/pkg/logging"
)

// App holds the state shared by all commands of one invocation.
type App struct {
	configPath string
	serverURL  string
	tokenPath  string

	cfg    *config.ClientConfig
	token  client.TokenFile
	client *client.Client
	logger *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &App{}

	root := &cobra.Command{
		Use:           "flightlog",
		Short:         "Flight training log client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}
	root.SetVersionTemplate("flightlog v{{.Version}}\n")

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default $FLIGHTLOG_CONFIG or user config dir)")
	root.PersistentFlags().StringVar(&a.serverURL, "server", "", "Server URL (overrides config)")
	root.PersistentFlags().StringVar(&a.tokenPath, "token-file", "", "Session token file (overrides config)")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.profileCommand(),
		a.roleCommand(),
		a.categoriesCommand(),
		a.entriesCommand(),
		a.reportCommand(),
		a.dashboardCommand(),
		a.exportCommand(),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string) int {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		return 1
	}
	return 0
}

func (a *App) init(stderr io.Writer) error {
	cfg, err := config.LoadClient(a.configPath)
	if err != nil {
		return err
	}
	if a.serverURL != "" {
		cfg.ServerURL = a.serverURL
	}
	if a.tokenPath != "" {
		cfg.TokenFile = a.tokenPath
	}
	a.cfg = cfg
	a.logger = logging.New(stderr, logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)

	a.token = client.TokenFile(cfg.TokenFile)
	token, err := a.token.Load()
	if err != nil {
		return err
	}

	a.client = client.New(cfg.ServerURL,
		client.WithToken(token),
		client.WithCache(cfg.CacheSize, cfg.CacheTTL),
		client.WithLogger(a.logger),
	)
	return nil
}

// requestContext bounds a command by the configured request timeout.
func (a *App) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.cfg.Timeout)
}
