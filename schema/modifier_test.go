package schema

import (
	"math"
	"testing"

	"github.com/melkeydev/sqltypes/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifierSQL(t *testing.T) {
	tests := []struct {
		name string
		mod  Modifier
		want string
	}{
		{"collate", Collate{Collation: "en_US"}, `COLLATE "en_US"`},
		{"collate with quote", Collate{Collation: `a"b`}, `COLLATE "a""b"`},
		{"collate with space", Collate{Collation: "en US"}, `COLLATE "en US"`},
		{"identity always", GeneratedAsIdentity{Condition: Always}, "GENERATED ALWAYS AS IDENTITY"},
		{"identity by default", GeneratedAsIdentity{Condition: ByDefault}, "GENERATED BY DEFAULT AS IDENTITY"},
		{"nullable", Nullable{Null: true}, "NULL"},
		{"not nullable", Nullable{Null: false}, "NOT NULL"},
		{"default string", Default{Value: "anon"}, "DEFAULT 'anon'"},
		{"default quoted string", Default{Value: "it's"}, "DEFAULT 'it''s'"},
		{"default int", Default{Value: 0}, "DEFAULT 0"},
		{"default float", Default{Value: 9.99}, "DEFAULT 9.99"},
		{"default bool", Default{Value: true}, "DEFAULT TRUE"},
		{"default false", Default{Value: false}, "DEFAULT FALSE"},
		{"default null", Default{Value: nil}, "DEFAULT NULL"},
		{"default expr", Default{Value: Expr("CURRENT_TIMESTAMP")}, "DEFAULT CURRENT_TIMESTAMP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.mod.SQL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModifierSQL_Errors(t *testing.T) {
	for _, mod := range []Modifier{
		Collate{},
		GeneratedAsIdentity{Condition: "sometimes"},
		Default{Value: Expr("  ")},
		Default{Value: []int{1}},
		Default{Value: math.Inf(1)},
		Default{Value: math.Inf(-1)},
		Default{Value: math.NaN()},
		Default{Value: float32(math.NaN())},
	} {
		_, err := mod.SQL()
		assert.Error(t, err, "%#v", mod)
	}
}

func TestIdentityShorthand(t *testing.T) {
	assert.Equal(t, "identity always", IdentityShorthand(Always))
	assert.Equal(t, "identity by default", IdentityShorthand(ByDefault))

	g, err := ParseIdentityShorthand("identity by default")
	require.NoError(t, err)
	assert.Equal(t, GeneratedAsIdentity{Condition: ByDefault}, g)

	got, err := ShorthandSQL("identity always")
	require.NoError(t, err)
	assert.Equal(t, "GENERATED ALWAYS AS IDENTITY", got)

	structured, err := GeneratedAsIdentity{Condition: Always}.SQL()
	require.NoError(t, err)
	assert.Equal(t, structured, got)

	for _, bad := range []string{"identity", "identity sometimes", "always", "IDENTITY ALWAYS"} {
		_, err := ShorthandSQL(bad)
		assert.ErrorIs(t, err, codec.ErrNoMatch, bad)
	}
}

func TestRenderModifiers_Order(t *testing.T) {
	got, err := RenderModifiers([]Modifier{Nullable{Null: false}, Collate{Collation: "C"}})
	require.NoError(t, err)
	assert.Equal(t, `COLLATE "C" NOT NULL`, got)

	got, err = RenderModifiers([]Modifier{
		Nullable{Null: true},
		Default{Value: 1},
		GeneratedAsIdentity{Condition: ByDefault},
		Collate{Collation: "C"},
	})
	require.NoError(t, err)
	assert.Equal(t, `COLLATE "C" GENERATED BY DEFAULT AS IDENTITY DEFAULT 1 NULL`, got)

	got, err = RenderModifiers(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestRenderModifiers_Errors(t *testing.T) {
	_, err := RenderModifiers([]Modifier{Nullable{}, nil})
	require.Error(t, err)

	_, err = RenderModifiers([]Modifier{Collate{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collate modifier")
}

func TestSortModifiers_Stable(t *testing.T) {
	in := []Modifier{Nullable{Null: true}, Collate{Collation: "a"}, Nullable{Null: false}, Collate{Collation: "b"}}
	got := SortModifiers(in)
	assert.Equal(t, []Modifier{Collate{Collation: "a"}, Collate{Collation: "b"}, Nullable{Null: true}, Nullable{Null: false}}, got)
	assert.Equal(t, Nullable{Null: true}, in[0], "input is not reordered")
}

func TestOrdering(t *testing.T) {
	assert.Equal(t, []ModifierKind{KindCollate, KindGeneratedAsIdentity, KindDefault, KindNullable}, Ordering())
	assert.Equal(t, "generated as identity", KindGeneratedAsIdentity.String())
	assert.Equal(t, "unknown", ModifierKind(42).String())
}
