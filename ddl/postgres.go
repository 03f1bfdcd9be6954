package ddl

import (
	"fmt"

	"github.com/melkeydev/sqltypes/schema"
)

// "name" <type> [COLLATE] [GENERATED] [DEFAULT] [NULL|NOT NULL], then the
// primary key on id.
func postgresColumns(t schema.Table) ([]string, error) {
	cols := make([]string, 0, len(t.Model)+1)
	for _, f := range t.Model {
		def, err := f.Column.SQL()
		if err != nil {
			return nil, fmt.Errorf("ddl: table %s column %s: %w", t.Name, f.Name, err)
		}
		cols = append(cols, QuoteIdent(f.Name)+" "+def)
	}

	if hasField(t, schema.IDField) {
		cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", QuoteIdent(schema.IDField)))
	}
	return cols, nil
}
