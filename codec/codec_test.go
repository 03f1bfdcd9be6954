package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "Age: 30", MakeLabel("Age", 30))
	assert.Equal(t, "color: enum(red)", MakeLabel("color", "enum(red)"))

	got, err := ParseLabel("Age: 30")
	require.NoError(t, err)
	assert.Equal(t, Label{Label: "Age", Value: "30"}, got)
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in      string
		want    Label
		wantErr bool
	}{
		{in: "a: b: c", want: Label{Label: "a", Value: "b: c"}},
		{in: ": x", want: Label{Label: "", Value: "x"}},
		{in: "x: ", want: Label{Label: "x", Value: ""}},
		{in: "no separator", wantErr: true},
		{in: "a:b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLabel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNoMatch)
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, "label", parseErr.Grammar)
				assert.Equal(t, tt.in, parseErr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabelRoundTrip(t *testing.T) {
	for _, pair := range []Label{{"Age", "30"}, {"color", "enum(red, green)"}, {"x", ""}} {
		got, err := ParseLabel(MakeLabel(pair.Label, pair.Value))
		require.NoError(t, err)
		assert.Equal(t, pair, got)
	}
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "_UserID$", MakeIdentifier("UserID"))

	tests := []struct {
		in   string
		want string
	}{
		{"_UserID$", "UserID"},
		{"UserID", "UserID"},
		{"_$", ""},
		{"_", "_"},
		{"$", "$"},
		{"_open", "_open"},
		{"close$", "close$"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIdentifier(tt.in))
		})
	}

	assert.Equal(t, "name", ParseIdentifier(MakeIdentifier("name")))
}

func TestMakeCall(t *testing.T) {
	assert.Equal(t, "decimal(10, 2)", MakeCall("decimal", 10, 2))
	assert.Equal(t, "enum(red, green, blue)", MakeCall("enum", "red", "green", "blue"))
	assert.Equal(t, "f()", MakeCall[string]("f"))

	got, err := MakeCallValues("func", 1, "test", 3)
	require.NoError(t, err)
	assert.Equal(t, "func(1, test, 3)", got)

	_, err = MakeCallValues("func", 1, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "call func")
}

func TestParseCall(t *testing.T) {
	tests := []struct {
		in      string
		want    Call
		wantErr bool
	}{
		{in: "func(1, test, 3)", want: Call{Prefix: "func", Args: []string{"1", "test", "3"}}},
		{in: "varchar(50)", want: Call{Prefix: "varchar", Args: []string{"50"}}},
		{in: "f()", want: Call{Prefix: "f", Args: []string{}}},
		{in: "('a', 'b')", want: Call{Prefix: "", Args: []string{"'a'", "'b'"}}},
		{in: "outer(inner(x))", want: Call{Prefix: "outer", Args: []string{"inner(x)"}}},
		{in: "text", wantErr: true},
		{in: "f(", wantErr: true},
		{in: "f(a) ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCall(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNoMatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Arguments containing the delimiter come back split: the encoding has no
// escaping.
func TestParseCall_DelimiterCollision(t *testing.T) {
	encoded := MakeCall("f", "a, b", "c")
	assert.Equal(t, "f(a, b, c)", encoded)

	got, err := ParseCall(encoded)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got.Args)
}
