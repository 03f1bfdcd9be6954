package schema

import (
	"fmt"
	"slices"
)

// Column is a column type with its modifiers. Modifiers are not
// de-duplicated; every one present is rendered.
type Column struct {
	Type      Type
	Modifiers []Modifier
}

// NewColumn builds a column from a type and modifier shorthands such as
// "identity always".
func NewColumn(t Type, shorthands ...string) (Column, error) {
	c := Column{Type: t}
	for _, s := range shorthands {
		g, err := ParseIdentityShorthand(s)
		if err != nil {
			return Column{}, fmt.Errorf("schema: column %s: %w", t.Key(), err)
		}
		c.Modifiers = append(c.Modifiers, g)
	}
	return c, nil
}

// DefaultID is the column injected as "id" when a table does not define one.
func DefaultID() Column {
	return Column{
		Type:      Integer(),
		Modifiers: []Modifier{GeneratedAsIdentity{Condition: Always}},
	}
}

// With returns a copy of c with mods added.
func (c Column) With(mods ...Modifier) Column {
	out := c.clone()
	out.Modifiers = append(out.Modifiers, mods...)
	return out
}

// Lookup returns the first modifier of the given kind.
func (c Column) Lookup(kind ModifierKind) (Modifier, bool) {
	for _, m := range c.Modifiers {
		if m.Kind() == kind {
			return m, true
		}
	}
	return nil, false
}

// Identity reports the column's identity modifier, if any.
func (c Column) Identity() (GeneratedAsIdentity, bool) {
	m, ok := c.Lookup(KindGeneratedAsIdentity)
	if !ok {
		return GeneratedAsIdentity{}, false
	}
	g, ok := m.(GeneratedAsIdentity)
	return g, ok
}

func (c Column) Validate() error {
	if err := c.Type.Validate(); err != nil {
		return err
	}
	for _, m := range c.Modifiers {
		if m == nil {
			return fmt.Errorf("schema: %s: nil modifier", c.Type.Key())
		}
		switch m := m.(type) {
		case GeneratedAsIdentity:
			f := c.Type.Family()
			if f != FamilySmallInt && f != FamilyInteger {
				return fmt.Errorf("schema: %s: identity requires an integer type", c.Type.Key())
			}
		case Default:
			if _, isExpr := m.Value.(Expr); isExpr || m.Value == nil {
				continue
			}
			if !c.Type.Accepts(m.Value) {
				return fmt.Errorf("schema: %s: default %v is outside the %s domain", c.Type.Key(), m.Value, c.Type.Domain())
			}
		}
		if _, err := m.SQL(); err != nil {
			return err
		}
	}
	return nil
}

// SQL renders the type token followed by the modifier clauses in order.
func (c Column) SQL() (string, error) {
	t, err := c.Type.SQL()
	if err != nil {
		return "", err
	}
	mods, err := RenderModifiers(c.Modifiers)
	if err != nil {
		return "", err
	}
	if mods == "" {
		return t.Column, nil
	}
	return t.Column + " " + mods, nil
}

func (c Column) clone() Column {
	return Column{
		Type:      Type{key: c.Type.key, family: c.Type.family, name: c.Type.name, options: slices.Clone(c.Type.options)},
		Modifiers: slices.Clone(c.Modifiers),
	}
}
