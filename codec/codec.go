// Package codec packs structured values into single strings and back:
// labels ("name: value"), internal identifiers ("_name$") and parameterized
// calls ("prefix(a, b)").
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/melkeydev/sqltypes/strs"
)

// ErrNoMatch is wrapped by every ParseError.
var ErrNoMatch = errors.New("no match")

// ParseError reports an input that does not follow a codec's grammar.
type ParseError struct {
	Grammar string
	Input   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codec: %q does not match %s grammar: %v", e.Input, e.Grammar, ErrNoMatch)
}

func (e *ParseError) Unwrap() error { return ErrNoMatch }

const (
	// LabelSeparator sits between a label's name and value.
	LabelSeparator = ": "
	// ArgsDelimiter sits between the arguments of a call.
	ArgsDelimiter = ", "
)

// Label is a decoded "name: value" pair.
type Label struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MakeLabel encodes name and value as "name: value".
func MakeLabel[N, V strs.Stringable](name N, value V) string {
	return strs.Text(name) + LabelSeparator + strs.Text(value)
}

// ParseLabel splits s at the first ": ".
func ParseLabel(s string) (Label, error) {
	name, value, ok := strings.Cut(s, LabelSeparator)
	if !ok {
		return Label{}, &ParseError{Grammar: "label", Input: s}
	}
	return Label{Label: name, Value: value}, nil
}

// MakeIdentifier wraps name as an internal identifier.
func MakeIdentifier(name string) string {
	return "_" + name + "$"
}

// ParseIdentifier strips the internal identifier wrapper. Input without the
// wrapper is returned unchanged.
func ParseIdentifier(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "_") && strings.HasSuffix(s, "$") {
		return s[1 : len(s)-1]
	}
	return s
}

// Call is a decoded "prefix(arg, arg)" string.
type Call struct {
	Prefix string   `json:"prefix"`
	Args   []string `json:"args"`
}

// MakeCall encodes prefix and args as "prefix(a1, a2, ...)".
func MakeCall[T strs.Stringable](prefix string, args ...T) string {
	return prefix + "(" + strs.Join(args, ArgsDelimiter) + ")"
}

// MakeCallValues is MakeCall for mixed text and numeric arguments.
func MakeCallValues(prefix string, args ...any) (string, error) {
	joined, err := strs.JoinValues(args, ArgsDelimiter)
	if err != nil {
		return "", fmt.Errorf("codec: call %s: %w", prefix, err)
	}
	return prefix + "(" + joined + ")", nil
}

// ParseCall takes everything before the first "(" as the prefix and
// everything between it and the closing ")" at the end of s as the argument
// list, re-split on ", ". Arguments that themselves contain ", " are not
// recoverable.
func ParseCall(s string) (Call, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s[open+1:], ")") {
		return Call{}, &ParseError{Grammar: "call", Input: s}
	}
	return Call{
		Prefix: s[:open],
		Args:   strs.Split(s[open+1:len(s)-1], ArgsDelimiter),
	}, nil
}
