// Package schemafile reads table schemas from YAML documents.
//
// A field is either a bare type key or a mapping of modifiers:
//
//	tables:
//	  - name: products
//	    fields:
//	      name:
//	        type: varchar(50)
//	        collate: C
//	        nullable: false
//	      price: { type: "decimal(10, 2)", default: 0 }
//	      color: "color: enum(red, green, blue)"
//
// Type keys use the same encoding as schema.Type.Key. Fields keep the order
// they are written in.
package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/melkeydev/sqltypes/schema"
	"gopkg.in/yaml.v3"
)

type document struct {
	Tables []tableDoc `yaml:"tables"`
}

type tableDoc struct {
	Name   string    `yaml:"name"`
	Fields yaml.Node `yaml:"fields"`
}

type fieldDoc struct {
	Type        string    `yaml:"type"`
	Collate     string    `yaml:"collate"`
	Identity    string    `yaml:"identity"`
	Modifiers   []string  `yaml:"modifiers"`
	Default     yaml.Node `yaml:"default"`
	DefaultExpr string    `yaml:"default_expr"`
	Nullable    *bool     `yaml:"nullable"`
}

var fieldKeys = map[string]bool{
	"type":         true,
	"collate":      true,
	"identity":     true,
	"modifiers":    true,
	"default":      true,
	"default_expr": true,
	"nullable":     true,
}

// Load reads and parses the schema file at path.
func Load(path string) ([]schema.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a schema document into validated tables.
func Parse(data []byte) ([]schema.Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("schemafile: document has no tables")
		}
		return nil, fmt.Errorf("schemafile: failed to parse: %w", err)
	}
	if len(doc.Tables) == 0 {
		return nil, fmt.Errorf("schemafile: document has no tables")
	}

	tables := make([]schema.Table, 0, len(doc.Tables))
	for _, td := range doc.Tables {
		fields, err := parseFields(&td.Fields)
		if err != nil {
			return nil, fmt.Errorf("schemafile: table %s: %w", td.Name, err)
		}
		t := schema.NewTable(td.Name, fields...)
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("schemafile: %w", err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func parseFields(n *yaml.Node) ([]schema.Field, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: fields must be a mapping", n.Line)
	}

	fields := make([]schema.Field, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		col, err := parseColumn(value)
		if err != nil {
			return nil, fmt.Errorf("line %d: field %s: %w", value.Line, key.Value, err)
		}
		fields = append(fields, schema.Field{Name: key.Value, Column: col})
	}
	return fields, nil
}

func parseColumn(n *yaml.Node) (schema.Column, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		t, err := schema.ParseType(n.Value)
		if err != nil {
			return schema.Column{}, err
		}
		return schema.Column{Type: t}, nil
	case yaml.MappingNode:
	default:
		return schema.Column{}, fmt.Errorf("expected a type key or a mapping")
	}

	for i := 0; i < len(n.Content); i += 2 {
		if k := n.Content[i].Value; !fieldKeys[k] {
			return schema.Column{}, fmt.Errorf("unknown key %q", k)
		}
	}

	var fd fieldDoc
	if err := n.Decode(&fd); err != nil {
		return schema.Column{}, err
	}
	if fd.Type == "" {
		return schema.Column{}, fmt.Errorf("missing type")
	}

	t, err := schema.ParseType(fd.Type)
	if err != nil {
		return schema.Column{}, err
	}
	col, err := schema.NewColumn(t, fd.Modifiers...)
	if err != nil {
		return schema.Column{}, err
	}

	if fd.Collate != "" {
		col = col.With(schema.Collate{Collation: fd.Collate})
	}
	if fd.Identity != "" {
		g, err := schema.ParseIdentityShorthand(schema.IdentityShorthand(schema.Condition(fd.Identity)))
		if err != nil {
			return schema.Column{}, err
		}
		col = col.With(g)
	}

	hasDefault := fd.Default.Kind != 0
	switch {
	case hasDefault && fd.DefaultExpr != "":
		return schema.Column{}, fmt.Errorf("default and default_expr are mutually exclusive")
	case hasDefault:
		var v any
		if err := fd.Default.Decode(&v); err != nil {
			return schema.Column{}, err
		}
		col = col.With(schema.Default{Value: v})
	case fd.DefaultExpr != "":
		col = col.With(schema.Default{Value: schema.Expr(fd.DefaultExpr)})
	}

	if fd.Nullable != nil {
		col = col.With(schema.Nullable{Null: *fd.Nullable})
	}
	return col, nil
}
