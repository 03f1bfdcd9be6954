// Package cli provides the sqltypes command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/melkeydev/sqltypes/config"
	"github.com/spf13/cobra"
)

// Version is reported by --version and by the MCP server handshake when the
// config does not set one.
var Version = "0.1.0"

type configKey struct{}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sqltypes",
		Short: "Render typed table schemas as SQL DDL",
		Long: `sqltypes reads table schemas written with typed column keys such as
varchar(50), decimal(10, 2) and "color: enum(red, green)" and renders them
as CREATE TYPE and CREATE TABLE statements for Postgres or SQLite.

The same operations are available to MCP clients through the serve command.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultPath+")")

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
