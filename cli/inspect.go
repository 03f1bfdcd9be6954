package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/melkeydev/sqltypes/schemafile"
	"github.com/melkeydev/sqltypes/types"
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the columns of every table in the schema file",
		Long: `Print one row per column with its type key, family, domain and rendered
modifiers. The implicit id column is shown where the table gets one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				file = configFrom(cmd).Schema.File
			}
			tables, err := schemafile.Load(file)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Table", "Field", "Type", "Family", "Domain", "Modifiers"})

			for _, tbl := range tables {
				desc, err := types.DescribeTable(tbl)
				if err != nil {
					return fmt.Errorf("failed to describe table: %w", err)
				}
				for _, f := range desc.Fields {
					t.AppendRow(table.Row{desc.Name, f.Name, f.Type, f.Family, f.Domain, f.Modifiers})
				}
			}

			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "schema file (default: schema.file from config)")
	return cmd
}
