package schema

import (
	"fmt"
	"slices"
)

// IDField is the primary key field every table has.
const IDField = "id"

// Field is a named column in a table model.
type Field struct {
	Name   string
	Column Column
}

// Row is reserved for the shape of a table row. It carries nothing yet.
type Row struct{}

type Table struct {
	Name  string
	Model []Field
	Row   Row
}

// NewTable assembles a table from its fields in order. If no field is named
// "id", DefaultID is added as the first field; a caller-supplied id is kept
// as is. The model is a deep copy of fields.
func NewTable(name string, fields ...Field) Table {
	model := make([]Field, 0, len(fields)+1)
	if !slices.ContainsFunc(fields, func(f Field) bool { return f.Name == IDField }) {
		model = append(model, Field{Name: IDField, Column: DefaultID()})
	}
	for _, f := range fields {
		model = append(model, Field{Name: f.Name, Column: f.Column.clone()})
	}
	return Table{Name: name, Model: model}
}

// Lookup returns the column of the named field.
func (t Table) Lookup(name string) (Column, bool) {
	for _, f := range t.Model {
		if f.Name == name {
			return f.Column, true
		}
	}
	return Column{}, false
}

// Enums returns the enum types used by the table, first use first, without
// repeats.
func (t Table) Enums() []Type {
	var out []Type
	seen := make(map[string]bool)
	for _, f := range t.Model {
		ct := f.Column.Type
		if ct.Family() != FamilyEnum || seen[ct.Key()] {
			continue
		}
		seen[ct.Key()] = true
		out = append(out, ct)
	}
	return out
}

func (t Table) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("schema: table name must not be empty")
	}
	if len(t.Model) == 0 {
		return fmt.Errorf("schema: table %s has no fields", t.Name)
	}
	seen := make(map[string]bool, len(t.Model))
	for _, f := range t.Model {
		if f.Name == "" {
			return fmt.Errorf("schema: table %s: field with empty name", t.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("schema: table %s: duplicate field %s", t.Name, f.Name)
		}
		seen[f.Name] = true
		if err := f.Column.Validate(); err != nil {
			return fmt.Errorf("table %s field %s: %w", t.Name, f.Name, err)
		}
	}
	return nil
}
