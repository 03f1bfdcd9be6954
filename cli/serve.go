package cli

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/melkeydev/sqltypes/mcp"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the schema tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)
			dialect, err := cfg.Schema.GetDialect()
			if err != nil {
				return err
			}

			s := newServer(cfg.Server.Name, cfg.Server.Version)
			mcp.RegisterTools(s, dialect)
			slog.Info("serving MCP tools on stdio", "name", cfg.Server.Name, "version", cfg.Server.Version, "dialect", dialect)

			return server.ServeStdio(s)
		},
	}
}

func newServer(name, version string) *server.MCPServer {
	if version == "" {
		version = Version
	}
	return server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)
}
