package variables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcbunkus/tmpl/internal/specs"
)

func TestMerge_IntegerCoercion(t *testing.T) {
	got := Merge(map[string]specs.Value{}, []string{"count", "42"})
	assert.Equal(t, map[string]specs.Value{"count": specs.Integer(42)}, got)
}

func TestMerge_BooleanCoercion(t *testing.T) {
	got := Merge(nil, []string{"enabled", "true", "disabled", "false"})
	assert.Equal(t, map[string]specs.Value{
		"enabled":  specs.Boolean(true),
		"disabled": specs.Boolean(false),
	}, got)
}

func TestMerge_StringFallback(t *testing.T) {
	got := Merge(nil, []string{"weird", "not-valid!@#"})
	assert.Equal(t, specs.String("not-valid!@#"), got["weird"])
}

func TestMerge_OnlyNamedKeyOverridden(t *testing.T) {
	defaults := map[string]specs.Value{
		"user":  specs.String("alice"),
		"count": specs.Integer(5),
	}

	got := Merge(defaults, []string{"user", "bob"})

	assert.Equal(t, map[string]specs.Value{
		"user":  specs.String("bob"),
		"count": specs.Integer(5),
	}, got)
	assert.Equal(t, specs.String("alice"), defaults["user"], "defaults must not be mutated")
}

func TestMerge_OddLengthDropsTrailingKey(t *testing.T) {
	got := Merge(nil, []string{"name", "bill", "orphan"})
	assert.Equal(t, map[string]specs.Value{"name": specs.String("bill")}, got)
}

func TestMerge_EmptyOverrides(t *testing.T) {
	defaults := map[string]specs.Value{"name": specs.String("testing")}
	got := Merge(defaults, nil)
	assert.Equal(t, defaults, got)
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		raw  string
		kind specs.Kind
	}{
		{raw: "42", kind: specs.KindInteger},
		{raw: "-7", kind: specs.KindInteger},
		{raw: "3.14", kind: specs.KindFloat},
		{raw: "1e3", kind: specs.KindFloat},
		{raw: "true", kind: specs.KindBoolean},
		{raw: "True", kind: specs.KindString},
		{raw: "1979-05-27", kind: specs.KindDateTime},
		{raw: "1979-05-27T07:32:00Z", kind: specs.KindDateTime},
		{raw: "07:32:00", kind: specs.KindDateTime},
		{raw: "0x1p-2", kind: specs.KindString},
		{raw: "-0X1.8p1", kind: specs.KindString},
		{raw: " 1979-05-27", kind: specs.KindString},
		{raw: "hello world", kind: specs.KindString},
		{raw: "", kind: specs.KindString},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.kind, Coerce(tt.raw).Kind())
		})
	}
}

func TestCoerce_Values(t *testing.T) {
	assert.Equal(t, specs.Integer(42), Coerce("42"))
	assert.Equal(t, specs.Float(2.5), Coerce("2.5"))
	assert.Equal(t, specs.String("bill"), Coerce("bill"))
}

func TestPairs(t *testing.T) {
	got := Pairs([]string{"name=bill", "expr=a=b", "broken", "empty="})
	require.Len(t, got, 6)
	assert.Equal(t, []string{"name", "bill", "expr", "a=b", "empty", ""}, got)
}
