// Package ddl assembles the statements that create a set of tables: the
// enum types they use, then one CREATE TABLE per table.
//
// Postgres is the canonical dialect; every column clause comes straight from
// the schema package's renderers. SQLite output is a translation of the same
// model for engines without enum types or identity columns.
package ddl

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"
	"github.com/melkeydev/sqltypes/schema"
	"github.com/melkeydev/sqltypes/strs"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ParseDialect maps a dialect name, as written in config files and flags, to
// a Dialect. The empty string selects Postgres.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "postgres", "postgresql", "pg":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("ddl: unsupported dialect %q", s)
	}
}

// QuoteIdent double-quotes an identifier, doubling embedded quotes.
func QuoteIdent(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// CreateTable renders the CREATE TABLE statement for t. Enum types the table
// uses are not included; see Build.
func CreateTable(d Dialect, t schema.Table) (string, error) {
	if err := t.Validate(); err != nil {
		return "", fmt.Errorf("ddl: %w", err)
	}

	var (
		cols []string
		err  error
	)
	switch d {
	case Postgres:
		cols, err = postgresColumns(t)
	case SQLite:
		cols, err = sqliteColumns(t)
	default:
		return "", fmt.Errorf("ddl: unsupported dialect %q", d)
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"CREATE TABLE %s (\n  %s\n);",
		QuoteIdent(t.Name),
		strs.Join(cols, ",\n  "),
	), nil
}

// Build returns every statement needed to create tables, in order: enum type
// definitions first (Postgres only, each name once), then the tables in the
// order given. Two tables defining the same enum name differently is an
// error, as is a repeated table name.
func Build(d Dialect, tables ...schema.Table) ([]string, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("ddl: at least one table is required")
	}

	var (
		typeStmts  []string
		tableStmts []string
	)
	enums := make(map[string]string)
	names := make(map[string]bool, len(tables))

	for _, t := range tables {
		if names[t.Name] {
			return nil, fmt.Errorf("ddl: duplicate table %s", t.Name)
		}
		names[t.Name] = true

		stmt, err := CreateTable(d, t)
		if err != nil {
			return nil, err
		}

		if d == Postgres {
			for _, e := range t.Enums() {
				rendered, err := e.SQL()
				if err != nil {
					return nil, fmt.Errorf("ddl: table %s: %w", t.Name, err)
				}
				if prev, ok := enums[rendered.Column]; ok {
					if prev != e.Key() {
						return nil, fmt.Errorf("ddl: enum %s defined twice: %q and %q", rendered.Column, prev, e.Key())
					}
					continue
				}
				enums[rendered.Column] = e.Key()
				typeStmts = append(typeStmts, rendered.Definition)
			}
		}

		tableStmts = append(tableStmts, stmt)
	}

	return append(typeStmts, tableStmts...), nil
}

// Script joins statements into a single SQL script.
func Script(stmts []string) string {
	if len(stmts) == 0 {
		return ""
	}
	return strs.Join(stmts, "\n\n") + "\n"
}

func hasField(t schema.Table, name string) bool {
	_, ok := t.Lookup(name)
	return ok
}
