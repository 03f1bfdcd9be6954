package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/jackc/pgx/v4"
	"github.com/melkeydev/sqltypes/codec"
	"github.com/melkeydev/sqltypes/strs"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ModifierKind identifies a column modifier. Kinds are ordered the way their
// clauses appear in a column definition.
type ModifierKind int

const (
	KindCollate ModifierKind = iota
	KindGeneratedAsIdentity
	KindDefault
	KindNullable
)

func (k ModifierKind) String() string {
	switch k {
	case KindCollate:
		return "collate"
	case KindGeneratedAsIdentity:
		return "generated as identity"
	case KindDefault:
		return "default"
	case KindNullable:
		return "nullable"
	default:
		return "unknown"
	}
}

// Ordering lists the modifier kinds in rendering order.
func Ordering() []ModifierKind {
	return []ModifierKind{KindCollate, KindGeneratedAsIdentity, KindDefault, KindNullable}
}

// Modifier is an attribute of a column that renders to its own clause.
type Modifier interface {
	Kind() ModifierKind
	SQL() (string, error)
}

type Collate struct {
	Collation string
}

func (Collate) Kind() ModifierKind { return KindCollate }

func (c Collate) SQL() (string, error) {
	if c.Collation == "" {
		return "", fmt.Errorf("schema: empty collation")
	}
	return "COLLATE " + pgx.Identifier{c.Collation}.Sanitize(), nil
}

// Condition says when an identity column takes a generated value.
type Condition string

const (
	Always    Condition = "always"
	ByDefault Condition = "by default"
)

func (c Condition) valid() bool { return c == Always || c == ByDefault }

const identityShorthandPrefix = "identity "

type GeneratedAsIdentity struct {
	Condition Condition
}

func (GeneratedAsIdentity) Kind() ModifierKind { return KindGeneratedAsIdentity }

func (g GeneratedAsIdentity) SQL() (string, error) {
	if !g.Condition.valid() {
		return "", fmt.Errorf("schema: unknown identity condition %q", g.Condition)
	}
	return "GENERATED " + cases.Upper(language.Und).String(string(g.Condition)) + " AS IDENTITY", nil
}

// IdentityShorthand returns the compact form of an identity modifier,
// e.g. "identity always".
func IdentityShorthand(c Condition) string {
	return identityShorthandPrefix + string(c)
}

// ParseIdentityShorthand turns "identity always" or "identity by default"
// into the structured modifier.
func ParseIdentityShorthand(s string) (GeneratedAsIdentity, error) {
	cond, ok := strings.CutPrefix(s, identityShorthandPrefix)
	if !ok || !Condition(cond).valid() {
		return GeneratedAsIdentity{}, &codec.ParseError{Grammar: "identity shorthand", Input: s}
	}
	return GeneratedAsIdentity{Condition: Condition(cond)}, nil
}

// ShorthandSQL renders a shorthand by way of its structured form.
func ShorthandSQL(s string) (string, error) {
	g, err := ParseIdentityShorthand(s)
	if err != nil {
		return "", err
	}
	return g.SQL()
}

// Expr is a raw SQL expression used as a default, e.g. CURRENT_TIMESTAMP.
type Expr string

// Default gives a column a default value. Strings are quoted, numbers and
// booleans are emitted bare, nil renders as NULL and Expr is emitted verbatim.
type Default struct {
	Value any
}

func (Default) Kind() ModifierKind { return KindDefault }

func (d Default) SQL() (string, error) {
	lit, err := Literal(d.Value)
	if err != nil {
		return "", err
	}
	return "DEFAULT " + lit, nil
}

// Literal renders v as a SQL literal.
func Literal(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "NULL", nil
	case Expr:
		if strings.TrimSpace(string(x)) == "" {
			return "", fmt.Errorf("schema: empty default expression")
		}
		return string(x), nil
	case bool:
		if x {
			return "TRUE", nil
		}
		return "FALSE", nil
	}

	if isNumber(v) {
		return strs.ToText(v)
	}
	if reflect.TypeOf(v).Kind() == reflect.String {
		s := reflect.ValueOf(v).String()
		return "'" + strings.ReplaceAll(s, "'", "''") + "'", nil
	}
	return "", fmt.Errorf("schema: cannot render %v (%T) as a literal", v, v)
}

type Nullable struct {
	Null bool
}

func (Nullable) Kind() ModifierKind { return KindNullable }

func (n Nullable) SQL() (string, error) {
	if n.Null {
		return "NULL", nil
	}
	return "NOT NULL", nil
}

// SortModifiers returns a copy of mods in rendering order. Modifiers of the
// same kind keep their relative order.
func SortModifiers(mods []Modifier) []Modifier {
	out := slices.Clone(mods)
	slices.SortStableFunc(out, func(a, b Modifier) int {
		return int(a.Kind()) - int(b.Kind())
	})
	return out
}

// RenderModifiers renders mods in rendering order, separated by spaces.
func RenderModifiers(mods []Modifier) (string, error) {
	if slices.Contains(mods, nil) {
		return "", fmt.Errorf("schema: nil modifier")
	}
	clauses := make([]string, 0, len(mods))
	for _, m := range SortModifiers(mods) {
		clause, err := m.SQL()
		if err != nil {
			return "", fmt.Errorf("%s modifier: %w", m.Kind(), err)
		}
		clauses = append(clauses, clause)
	}
	return strs.Join(clauses, " "), nil
}
