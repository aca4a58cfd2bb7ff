// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stack-community/stack-server/internal/value"
)

func TestAsString(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{"number", value.Number(5), "5"},
		{"fractional number", value.Number(2.5), "2.5"},
		{"string", value.String("hi"), "hi"},
		{"bool true", value.Bool(true), "true"},
		{"bool false", value.Bool(false), "false"},
		{"list uses display form", value.List([]value.Value{value.Number(1), value.String("a")}), "[1 (a)]"},
		{"json string scalar", value.JSON(`"text"`), "text"},
		{"json object is empty", value.JSON(`{"a":1}`), ""},
		{"json number is empty", value.JSON(`42`), ""},
		{"error", value.Error("regex"), "error:regex"},
		{"object", value.Object("pt", nil), "Object<pt>"},
		{"binary", value.Binary([]byte{1, 2, 3}), "Binary<3>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.AsString())
		})
	}
}

func TestAsNumber(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want float64
	}{
		{"number", value.Number(3.5), 3.5},
		{"numeric string", value.String("42"), 42},
		{"non-numeric string", value.String("abc"), 0},
		{"bool true", value.Bool(true), 1},
		{"bool false", value.Bool(false), 0},
		{"list length", value.List([]value.Value{value.Number(0), value.Number(0)}), 2},
		{"json number", value.JSON("7.5"), 7.5},
		{"json bool", value.JSON("true"), 0},
		{"error parses", value.Error("12"), 12},
		{"error tag", value.Error("regex"), 0},
		{"object field count", value.Object("pt", map[string]value.Value{"x": value.Number(1)}), 1},
		{"binary length", value.Binary([]byte{9, 9}), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.AsNumber())
		})
	}
}

func TestAsBool(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want bool
	}{
		{"non-empty string", value.String("x"), true},
		{"empty string", value.String(""), false},
		{"non-zero number", value.Number(-1), true},
		{"zero number", value.Number(0), false},
		{"non-empty list", value.List([]value.Value{value.Number(0)}), true},
		{"empty list", value.List(nil), false},
		{"json true", value.JSON("true"), true},
		{"json string", value.JSON(`"true"`), false},
		{"error true word", value.Error("true"), true},
		{"error other", value.Error("regex"), false},
		{"binary non-empty", value.Binary([]byte{0}), true},
		{"binary empty", value.Binary(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.AsBool())
		})
	}
}

// The empty-object truth quirk: an object is truthy exactly when its
// field map is empty.
func TestAsBool_EmptyObjectQuirk(t *testing.T) {
	assert.True(t, value.Object("pt", nil).AsBool())
	assert.True(t, value.Object("pt", map[string]value.Value{}).AsBool())
	assert.False(t, value.Object("pt", map[string]value.Value{"x": value.Number(1)}).AsBool())
}

func TestAsList(t *testing.T) {
	t.Run("string splits into characters", func(t *testing.T) {
		got := value.String("héy").AsList()
		require.Len(t, got, 3)
		assert.Equal(t, "h", got[0].AsString())
		assert.Equal(t, "é", got[1].AsString())
		assert.Equal(t, "y", got[2].AsString())
	})

	t.Run("scalars wrap themselves", func(t *testing.T) {
		assert.Equal(t, []value.Value{value.Number(5)}, value.Number(5).AsList())
		assert.Equal(t, []value.Value{value.Bool(true)}, value.Bool(true).AsList())
		assert.Equal(t, []value.Value{value.Error("x")}, value.Error("x").AsList())
	})

	t.Run("json object yields keys", func(t *testing.T) {
		got := value.JSON(`{"a":1,"b":2}`).AsList()
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].AsString())
		assert.Equal(t, "b", got[1].AsString())
	})

	t.Run("json scalar yields nothing", func(t *testing.T) {
		assert.Empty(t, value.JSON("5").AsList())
	})

	t.Run("binary yields byte numbers", func(t *testing.T) {
		got := value.Binary([]byte{7, 255}).AsList()
		require.Len(t, got, 2)
		assert.Equal(t, 7.0, got[0].AsNumber())
		assert.Equal(t, 255.0, got[1].AsNumber())
	})

	t.Run("object yields field values", func(t *testing.T) {
		got := value.Object("pt", map[string]value.Value{"x": value.Number(3)}).AsList()
		require.Len(t, got, 1)
		assert.Equal(t, 3.0, got[0].AsNumber())
	})
}

func TestAsJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, value.JSON(`{"a":1}`).AsJSON())
	assert.Equal(t, `{"a":1}`, value.String(`{"a":1}`).AsJSON())
	assert.Equal(t, "{}", value.String("not json").AsJSON())
	assert.Equal(t, "{}", value.Number(5).AsJSON())
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{"number", value.Number(5), "5"},
		{"string parenthesised", value.String("a b"), "(a b)"},
		{"bool", value.Bool(false), "false"},
		{"nested list", value.List([]value.Value{
			value.Number(1),
			value.List([]value.Value{value.String("x")}),
		}), "[1 [(x)]]"},
		{"error", value.Error("sql-connect"), "error:sql-connect"},
		{"object", value.Object("table", nil), "Object<table>"},
		{"binary", value.Binary(make([]byte, 4)), "Binary<4>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Display())
		})
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "number", value.Number(0).TypeName())
	assert.Equal(t, "string", value.String("").TypeName())
	assert.Equal(t, "bool", value.Bool(true).TypeName())
	assert.Equal(t, "list", value.List(nil).TypeName())
	assert.Equal(t, "json", value.JSON("{}").TypeName())
	assert.Equal(t, "error", value.Error("x").TypeName())
	assert.Equal(t, "binary", value.Binary(nil).TypeName())
	assert.Equal(t, "pt", value.Object("pt", nil).TypeName())
}

func TestClone_Independence(t *testing.T) {
	original := value.List([]value.Value{
		value.Object("pt", map[string]value.Value{"x": value.Number(1)}),
		value.Binary([]byte{1, 2}),
	})

	clone := original.Clone()
	clone.Items[0].Fields["x"] = value.Number(99)
	clone.Items[1].Bytes[0] = 42

	assert.Equal(t, 1.0, original.Items[0].Fields["x"].AsNumber())
	assert.Equal(t, byte(1), original.Items[1].Bytes[0])
}
