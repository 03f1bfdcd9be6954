package cli

import (
	"fmt"
	"log/slog"

	"github.com/melkeydev/sqltypes/config"
	"github.com/melkeydev/sqltypes/ddl"
	"github.com/melkeydev/sqltypes/schema"
	"github.com/melkeydev/sqltypes/schemafile"
	"github.com/spf13/cobra"
)

func newRenderCommand() *cobra.Command {
	var file, dialect string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the schema file as SQL DDL",
		Long: `Render every table in the schema file as SQL. Enum types are emitted
first as CREATE TYPE statements (Postgres only), followed by one CREATE TABLE
per table in file order.`,
		Example: `  # Render using sqltypes.yaml settings
  sqltypes render

  # Render a specific file for SQLite
  sqltypes render -f db/schema.yaml --dialect sqlite > schema.sql`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)
			d, tables, err := loadSchema(cfg, file, dialect)
			if err != nil {
				return err
			}

			stmts, err := ddl.Build(d, tables...)
			if err != nil {
				return fmt.Errorf("failed to render schema: %w", err)
			}

			slog.Debug("rendered schema", "dialect", d, "tables", len(tables), "statements", len(stmts))
			_, err = fmt.Fprint(cmd.OutOrStdout(), ddl.Script(stmts))
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "schema file (default: schema.file from config)")
	cmd.Flags().StringVarP(&dialect, "dialect", "d", "", "target dialect: postgres or sqlite (default: schema.dialect from config)")
	_ = cmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(ddl.Postgres), string(ddl.SQLite)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// loadSchema resolves the schema path and dialect, letting flags override the
// config, and parses the schema file.
func loadSchema(cfg *config.Config, file, dialect string) (ddl.Dialect, []schema.Table, error) {
	if file == "" {
		file = cfg.Schema.File
	}
	if dialect == "" {
		dialect = cfg.Schema.Dialect
	}

	d, err := ddl.ParseDialect(dialect)
	if err != nil {
		return "", nil, err
	}

	tables, err := schemafile.Load(file)
	if err != nil {
		return "", nil, err
	}
	return d, tables, nil
}
