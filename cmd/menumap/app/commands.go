package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/menumap/cmd/menumap/cmd/list"
	"github.com/agentstation/menumap/cmd/menumap/cmd/man"
	"github.com/agentstation/menumap/cmd/menumap/cmd/serve"
	"github.com/agentstation/menumap/cmd/menumap/cmd/validate"
	"github.com/agentstation/menumap/cmd/menumap/cmd/version"
	"github.com/agentstation/menumap/internal/server"
	"github.com/agentstation/menumap/internal/server/handlers"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(serve.NewCommand(a, a.serverDefaults))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(validate.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
	rootCmd.AddCommand(man.NewCommand())
}

// serverDefaults returns the server configuration implied by the config
// file and environment. Serve flags are layered on top of it.
// It is called at run time so a --config file is already applied.
func (a *App) serverDefaults() server.Config {
	cfg := server.DefaultConfig()
	if a.config.Host != "" {
		cfg.Host = a.config.Host
	}
	if a.config.Port > 0 {
		cfg.Port = a.config.Port
	}
	if a.config.ListMode != "" {
		cfg.ListMode = handlers.ListMode(a.config.ListMode)
	}
	return cfg
}
