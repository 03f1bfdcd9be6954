package ddl

import (
	"fmt"

	"github.com/melkeydev/sqltypes/codec"
	"github.com/melkeydev/sqltypes/schema"
	"github.com/melkeydev/sqltypes/strs"
)

// SQLite has neither enum types nor identity columns:
//   - enums become TEXT with a CHECK on the allowed values
//   - an identity id becomes INTEGER PRIMARY KEY AUTOINCREMENT
//   - collations are plain names (BINARY, NOCASE, RTRIM)
func sqliteColumns(t schema.Table) ([]string, error) {
	cols := make([]string, 0, len(t.Model)+1)
	inlinePK := false

	for _, f := range t.Model {
		def, identity, err := sqliteColumn(f)
		if err != nil {
			return nil, fmt.Errorf("ddl: table %s column %s: %w", t.Name, f.Name, err)
		}
		if identity {
			if f.Name != schema.IDField {
				return nil, fmt.Errorf("ddl: table %s column %s: sqlite supports identity only on %s", t.Name, f.Name, schema.IDField)
			}
			inlinePK = true
		}
		cols = append(cols, QuoteIdent(f.Name)+" "+def)
	}

	if !inlinePK && hasField(t, schema.IDField) {
		cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", QuoteIdent(schema.IDField)))
	}
	return cols, nil
}

func sqliteColumn(f schema.Field) (string, bool, error) {
	typ := f.Column.Type
	token := typ.Key()
	if typ.Family() == schema.FamilyEnum {
		token = "TEXT"
	}

	clauses := []string{token}
	identity := false
	for _, m := range schema.SortModifiers(f.Column.Modifiers) {
		switch m := m.(type) {
		case schema.Collate:
			if !schema.IsIdentifier(m.Collation) {
				return "", false, fmt.Errorf("sqlite collation %q must be a bare name", m.Collation)
			}
			clauses = append(clauses, "COLLATE "+m.Collation)
		case schema.GeneratedAsIdentity:
			if identity {
				continue
			}
			identity = true
			clauses[0] = "INTEGER"
			clauses = append(clauses, "PRIMARY KEY AUTOINCREMENT")
		default:
			clause, err := m.SQL()
			if err != nil {
				return "", false, err
			}
			clauses = append(clauses, clause)
		}
	}

	if typ.Family() == schema.FamilyEnum {
		in := codec.MakeCall("", strs.Wrap(typ.Options(), "'")...)
		clauses = append(clauses, fmt.Sprintf("CHECK (%s IN %s)", QuoteIdent(f.Name), in))
	}
	return strs.Join(clauses, " "), identity, nil
}
