package types

import (
	"fmt"

	"github.com/melkeydev/sqltypes/schema"
)

type TypeDescription struct {
	Key        string `json:"key"`
	Family     string `json:"family"`
	Domain     string `json:"domain"`
	Parameters any    `json:"parameters,omitempty"`
	Column     string `json:"column"`
	Definition string `json:"definition,omitempty"`
}

type Field struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Family    string `json:"family"`
	Domain    string `json:"domain"`
	Modifiers string `json:"modifiers,omitempty"`
}

type Table struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

type RenderResult struct {
	Dialect    string   `json:"dialect"`
	Statements []string `json:"statements"`
}

// DescribeType reports a type's family, domain, construction parameters and
// rendered SQL.
func DescribeType(t schema.Type) (*TypeDescription, error) {
	rendered, err := t.SQL()
	if err != nil {
		return nil, err
	}

	var params any
	switch t.Family() {
	case schema.FamilyDecimal:
		params, err = schema.ParseDecimal(t.Key())
	case schema.FamilyVarchar:
		params, err = schema.ParseVarchar(t.Key())
	case schema.FamilyEnum:
		params, err = schema.ParseEnum(t.Key())
	}
	if err != nil {
		return nil, err
	}

	return &TypeDescription{
		Key:        t.Key(),
		Family:     string(t.Family()),
		Domain:     t.Domain().String(),
		Parameters: params,
		Column:     rendered.Column,
		Definition: rendered.Definition,
	}, nil
}

func DescribeTable(t schema.Table) (*Table, error) {
	out := &Table{Name: t.Name, Fields: make([]Field, 0, len(t.Model))}
	for _, f := range t.Model {
		mods, err := schema.RenderModifiers(f.Column.Modifiers)
		if err != nil {
			return nil, fmt.Errorf("table %s field %s: %w", t.Name, f.Name, err)
		}
		out.Fields = append(out.Fields, Field{
			Name:      f.Name,
			Type:      f.Column.Type.Key(),
			Family:    string(f.Column.Type.Family()),
			Domain:    f.Column.Type.Domain().String(),
			Modifiers: mods,
		})
	}
	return out, nil
}
