// Package strs implements the sequence-of-text operations the schema
// encodings are built from: join, split and wrap-each over elements that are
// either text or numbers.
package strs

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Stringable is the element alphabet: any text or numeric type.
type Stringable interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ErrNotStringable is wrapped by every ElementError.
var ErrNotStringable = errors.New("value is not text or a number")

// ElementError reports the element of a sequence that is not Stringable.
// Index is -1 when the value was converted on its own.
type ElementError struct {
	Index int
	Value any
}

func (e *ElementError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("strs: %v (%T): %v", e.Value, e.Value, ErrNotStringable)
	}
	return fmt.Sprintf("strs: element %d %v (%T): %v", e.Index, e.Value, e.Value, ErrNotStringable)
}

func (e *ElementError) Unwrap() error { return ErrNotStringable }

// Text returns the textual form of a single element.
func Text[T Stringable](v T) string {
	// Every kind admitted by Stringable is handled by ToText.
	s, _ := ToText(v)
	return s
}

// ToText converts a dynamically typed value to text. Only strings and numbers
// (including named types over them and json.Number) are accepted.
func ToText(v any) (string, error) {
	switch v.(type) {
	case string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return cast.ToStringE(v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cast.ToStringE(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cast.ToStringE(rv.Uint())
	case reflect.Float32:
		return cast.ToStringE(float32(rv.Float()))
	case reflect.Float64:
		return cast.ToStringE(rv.Float())
	}

	return "", &ElementError{Index: -1, Value: v}
}

// Join concatenates seq with sep between elements. An empty sequence yields
// "" and a single element is returned as is; there is never a leading or
// trailing separator.
func Join[T Stringable](seq []T, sep string) string {
	texts := make([]string, len(seq))
	for i, v := range seq {
		texts[i] = Text(v)
	}
	return strings.Join(texts, sep)
}

// JoinValues is Join for dynamically typed sequences. The first element that
// is not Stringable is reported as an *ElementError.
func JoinValues(seq []any, sep string) (string, error) {
	texts, err := textsOf(seq)
	if err != nil {
		return "", err
	}
	return strings.Join(texts, sep), nil
}

// Split cuts s at every occurrence of delim, scanning left to right and
// taking the first match each time. An empty s yields an empty sequence and s
// without delim yields [s]. A delimiter at the very end does not produce a
// trailing empty element. An empty delim splits s into its runes.
func Split(s, delim string) []string {
	out := []string{}
	if delim == "" {
		for _, r := range s {
			out = append(out, string(r))
		}
		return out
	}

	for s != "" {
		i := strings.Index(s, delim)
		if i < 0 {
			out = append(out, s)
			break
		}
		out = append(out, s[:i])
		s = s[i+len(delim):]
	}
	return out
}

// WrapEach returns a sequence of the same length with every element turned
// into before + element + after.
func WrapEach[T Stringable](seq []T, before, after string) []string {
	out := make([]string, len(seq))
	for i, v := range seq {
		out[i] = before + Text(v) + after
	}
	return out
}

// Wrap is WrapEach with the same text on both sides.
func Wrap[T Stringable](seq []T, around string) []string {
	return WrapEach(seq, around, around)
}

// WrapValues is WrapEach for dynamically typed sequences.
func WrapValues(seq []any, before, after string) ([]string, error) {
	texts, err := textsOf(seq)
	if err != nil {
		return nil, err
	}
	return WrapEach(texts, before, after), nil
}

func textsOf(seq []any) ([]string, error) {
	texts := make([]string, len(seq))
	for i, v := range seq {
		s, err := ToText(v)
		if err != nil {
			return nil, &ElementError{Index: i, Value: v}
		}
		texts[i] = s
	}
	return texts, nil
}
