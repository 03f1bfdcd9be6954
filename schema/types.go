// Package schema describes relational table schemas as values: column types
// identified by their encoded SQL keys, column modifiers, columns and tables.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/melkeydev/sqltypes/codec"
	"github.com/melkeydev/sqltypes/strs"
)

// Domain is the kind of value a column holds.
type Domain int

const (
	DomainNumber Domain = iota
	DomainString
)

func (d Domain) String() string {
	switch d {
	case DomainNumber:
		return "number"
	case DomainString:
		return "string"
	default:
		return "unknown"
	}
}

// Family is a category of SQL column type.
type Family string

const (
	FamilySmallInt Family = "smallint"
	FamilyInteger  Family = "integer"
	FamilyDecimal  Family = "decimal"
	FamilyVarchar  Family = "varchar"
	FamilyText     Family = "text"
	FamilyEnum     Family = "enum"
)

// Family groups.
var (
	Numerics     = []Family{FamilySmallInt, FamilyInteger, FamilyDecimal}
	Characters   = []Family{FamilyVarchar, FamilyText}
	Enumerations = []Family{FamilyEnum}
)

// Domain returns the value domain shared by every type of the family.
func (f Family) Domain() Domain {
	if slices.Contains(Numerics, f) {
		return DomainNumber
	}
	return DomainString
}

// Admits reports whether t is an instance of the family. The check runs on
// the encoded key, so a Type is admitted only if its key parses back.
func (f Family) Admits(t Type) bool {
	parsed, err := ParseType(t.key)
	return err == nil && parsed.family == f
}

// Type is a column type. Its key is the encoded SQL type token
// ("varchar(50)", "color: enum(red, green)") and doubles as its identity.
type Type struct {
	key     string
	family  Family
	name    string
	options []string
}

func SmallInt() Type { return Type{key: "smallint", family: FamilySmallInt} }

func Integer() Type { return Type{key: "integer", family: FamilyInteger} }

func Decimal(precision, scale int) Type {
	return Type{key: codec.MakeCall(string(FamilyDecimal), precision, scale), family: FamilyDecimal}
}

func Varchar(length int) Type {
	return Type{key: codec.MakeCall(string(FamilyVarchar), length), family: FamilyVarchar}
}

func Text() Type { return Type{key: "text", family: FamilyText} }

// Enum is a named enumerated type; its values are limited to options.
func Enum(name string, options ...string) Type {
	return Type{
		key:     codec.MakeLabel(name, codec.MakeCall(string(FamilyEnum), options...)),
		family:  FamilyEnum,
		name:    name,
		options: slices.Clone(options),
	}
}

func (t Type) Key() string { return t.key }
func (t Type) Family() Family { return t.family }
func (t Type) Domain() Domain { return t.family.Domain() }
func (t Type) IsZero() bool { return t.key == "" }
func (t Type) String() string { return t.key }
func (t Type) Options() []string { return slices.Clone(t.options) }

// Accepts reports whether v belongs to the type's value domain. Enum types
// only accept their own options.
func (t Type) Accepts(v any) bool {
	if t.Domain() == DomainNumber {
		return isNumber(v)
	}
	if v == nil || reflect.TypeOf(v).Kind() != reflect.String {
		return false
	}
	if t.family == FamilyEnum {
		return slices.Contains(t.options, reflect.ValueOf(v).String())
	}
	return true
}

func isNumber(v any) bool {
	if _, ok := v.(json.Number); ok {
		return true
	}
	if v == nil {
		return false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return false
}

// Validate checks that the type's parameters are usable and that its key
// decodes back to the values it was built from.
func (t Type) Validate() error {
	switch t.family {
	case "":
		return fmt.Errorf("schema: empty column type")
	case FamilyDecimal:
		p, err := ParseDecimal(t.key)
		if err != nil {
			return err
		}
		if p.Precision < 1 {
			return fmt.Errorf("schema: %s: precision must be at least 1", t.key)
		}
		if p.Scale < 0 || p.Scale > p.Precision {
			return fmt.Errorf("schema: %s: scale must be between 0 and the precision", t.key)
		}
	case FamilyVarchar:
		p, err := ParseVarchar(t.key)
		if err != nil {
			return err
		}
		if p.Length < 1 {
			return fmt.Errorf("schema: %s: length must be at least 1", t.key)
		}
	case FamilyEnum:
		p, err := ParseEnum(t.key)
		if err != nil {
			return err
		}
		if t.name == "" {
			return fmt.Errorf("schema: enum type needs a name")
		}
		if p.Name != t.name {
			return fmt.Errorf("schema: enum name %q cannot contain %q", t.name, codec.LabelSeparator)
		}
		if !IsIdentifier(t.name) {
			return fmt.Errorf("schema: enum name %q is not a plain identifier", t.name)
		}
		if IsReserved(t.name) {
			return fmt.Errorf("schema: enum name %q is a reserved word", t.name)
		}
		if len(t.options) == 0 {
			return fmt.Errorf("schema: enum %s needs at least one option", t.name)
		}
		if !slices.Equal(p.Options, t.options) {
			return fmt.Errorf("schema: enum %s: options cannot contain %q", t.name, codec.ArgsDelimiter)
		}
		seen := make(map[string]bool, len(t.options))
		for _, o := range t.options {
			if o == "" || strings.ContainsRune(o, '\'') {
				return fmt.Errorf("schema: enum %s: invalid option %q", t.name, o)
			}
			if seen[o] {
				return fmt.Errorf("schema: enum %s: duplicate option %q", t.name, o)
			}
			seen[o] = true
		}
	}
	return nil
}

// ColumnTypeSQL is the rendered form of a type: the token used in a column
// definition and, for types that need one, the statement that defines it.
type ColumnTypeSQL struct {
	Column     string `json:"column"`
	Definition string `json:"definition,omitempty"`
}

// SQL renders the type. For most families the key already is the SQL token.
// Enums render to their name plus a CREATE TYPE statement rebuilt from the key.
func (t Type) SQL() (ColumnTypeSQL, error) {
	if t.IsZero() {
		return ColumnTypeSQL{}, fmt.Errorf("schema: empty column type")
	}
	if t.family != FamilyEnum {
		return ColumnTypeSQL{Column: t.key}, nil
	}

	p, err := ParseEnum(t.key)
	if err != nil {
		return ColumnTypeSQL{}, err
	}
	values := codec.MakeCall("", strs.Wrap(p.Options, "'")...)
	return ColumnTypeSQL{
		Column:     p.Name,
		Definition: "CREATE TYPE " + p.Name + " AS ENUM" + values + ";",
	}, nil
}

type DecimalParameters struct {
	Precision int `json:"precision"`
	Scale     int `json:"scale"`
}

// ParseDecimal recovers precision and scale from a "decimal(p, s)" key.
func ParseDecimal(key string) (DecimalParameters, error) {
	args, err := familyArgs(key, FamilyDecimal, 2)
	if err != nil {
		return DecimalParameters{}, err
	}
	precision, err := atoi(args[0])
	if err != nil {
		return DecimalParameters{}, grammarError(FamilyDecimal, key)
	}
	scale, err := atoi(args[1])
	if err != nil {
		return DecimalParameters{}, grammarError(FamilyDecimal, key)
	}
	return DecimalParameters{Precision: precision, Scale: scale}, nil
}

type VarcharParameters struct {
	Length int `json:"length"`
}

// ParseVarchar recovers the length from a "varchar(n)" key.
func ParseVarchar(key string) (VarcharParameters, error) {
	args, err := familyArgs(key, FamilyVarchar, 1)
	if err != nil {
		return VarcharParameters{}, err
	}
	length, err := atoi(args[0])
	if err != nil {
		return VarcharParameters{}, grammarError(FamilyVarchar, key)
	}
	return VarcharParameters{Length: length}, nil
}

type EnumParameters struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// ParseEnum recovers the name and options from a "name: enum(a, b)" key.
func ParseEnum(key string) (EnumParameters, error) {
	label, err := codec.ParseLabel(key)
	if err != nil {
		return EnumParameters{}, grammarError(FamilyEnum, key)
	}
	call, err := codec.ParseCall(label.Value)
	if err != nil || call.Prefix != string(FamilyEnum) {
		return EnumParameters{}, grammarError(FamilyEnum, key)
	}
	return EnumParameters{Name: label.Label, Options: call.Args}, nil
}

// ParseType rebuilds a Type from its encoded key.
func ParseType(key string) (Type, error) {
	switch Family(key) {
	case FamilySmallInt:
		return SmallInt(), nil
	case FamilyInteger:
		return Integer(), nil
	case FamilyText:
		return Text(), nil
	}

	if p, err := ParseDecimal(key); err == nil {
		return Decimal(p.Precision, p.Scale), nil
	}
	if p, err := ParseVarchar(key); err == nil {
		return Varchar(p.Length), nil
	}
	if p, err := ParseEnum(key); err == nil {
		return Enum(p.Name, p.Options...), nil
	}
	return Type{}, &codec.ParseError{Grammar: "column type", Input: key}
}

func familyArgs(key string, f Family, n int) ([]string, error) {
	call, err := codec.ParseCall(key)
	if err != nil || call.Prefix != string(f) || len(call.Args) != n {
		return nil, grammarError(f, key)
	}
	return call.Args, nil
}

// atoi accepts only the canonical decimal form, so "05" and "+5" do not
// decode to a key that would re-encode differently.
func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if strconv.Itoa(n) != s {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

func grammarError(f Family, key string) error {
	return &codec.ParseError{Grammar: string(f), Input: key}
}
