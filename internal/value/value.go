// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

// Package value defines the tagged runtime value of the Stack language
// and its coercion matrix. Every value coerces totally to each of the
// four primitive shapes (string, number, bool, list); AsJSON is the one
// partial coercion and is used only where a JSON node is expected.
package value

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Kind discriminates the Value union.
type Kind int

// Value kinds.
const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindList
	KindJSON
	KindObject
	KindError
	KindBinary
)

// Value is one runtime value. Exactly the payload fields implied by Kind
// are meaningful; the rest stay zero.
type Value struct {
	Kind   Kind
	Num    float64
	Str    string // string text, error tag, or raw JSON document
	Flag   bool
	Items  []Value
	Class  string // object class tag
	Fields map[string]Value
	Bytes  []byte
}

// Number returns a number value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// String returns a string value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Flag: b} }

// List returns a list value over items.
func List(items []Value) Value { return Value{Kind: KindList, Items: items} }

// JSON returns a JSON node holding the raw document text.
func JSON(raw string) Value { return Value{Kind: KindJSON, Str: raw} }

// Object returns a named object over the given field map.
func Object(class string, fields map[string]Value) Value {
	return Value{Kind: KindObject, Class: class, Fields: fields}
}

// Error returns a first-class failure sentinel tagged with kind.
func Error(tag string) Value { return Value{Kind: KindError, Str: tag} }

// Binary returns an opaque byte sequence value.
func Binary(b []byte) Value { return Value{Kind: KindBinary, Bytes: b} }

// TypeName reports the tag used by the "type" operator: the primitive
// kind name, or the class tag for objects.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindJSON:
		return "json"
	case KindError:
		return "error"
	case KindBinary:
		return "binary"
	case KindObject:
		return v.Class
	default:
		return "string"
	}
}

// AsString coerces to text.
func (v Value) AsString() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return formatNumber(v.Num)
	case KindBool:
		return strconv.FormatBool(v.Flag)
	case KindList:
		return v.Display()
	case KindJSON:
		// Only a scalar string node has a string form; everything
		// else (objects, arrays, numbers, null) coerces to "".
		if r := gjson.Parse(v.Str); r.Type == gjson.String {
			return r.Str
		}
		return ""
	case KindError:
		return "error:" + v.Str
	case KindObject:
		return "Object<" + v.Class + ">"
	case KindBinary:
		return "Binary<" + strconv.Itoa(len(v.Bytes)) + ">"
	default:
		return ""
	}
}

// AsNumber coerces to a float64.
func (v Value) AsNumber() float64 {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindString:
		n, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return 0
		}
		return n
	case KindBool:
		if v.Flag {
			return 1
		}
		return 0
	case KindJSON:
		if r := gjson.Parse(v.Str); r.Type == gjson.Number {
			return r.Num
		}
		return 0
	case KindList:
		return float64(len(v.Items))
	case KindError:
		n, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return 0
		}
		return n
	case KindObject:
		return float64(len(v.Fields))
	case KindBinary:
		return float64(len(v.Bytes))
	default:
		return 0
	}
}

// AsBool coerces to a truth value. Objects report true when the field
// map is empty and false otherwise.
func (v Value) AsBool() bool {
	switch v.Kind {
	case KindString:
		return v.Str != ""
	case KindNumber:
		return v.Num != 0
	case KindBool:
		return v.Flag
	case KindList:
		return len(v.Items) != 0
	case KindJSON:
		r := gjson.Parse(v.Str)
		return r.Type == gjson.True
	case KindError:
		// Only the literal words parse; anything else is false.
		return v.Str == "true"
	case KindObject:
		return len(v.Fields) == 0
	case KindBinary:
		return len(v.Bytes) != 0
	default:
		return false
	}
}

// AsList coerces to a list of values.
func (v Value) AsList() []Value {
	switch v.Kind {
	case KindString:
		runes := []rune(v.Str)
		items := make([]Value, 0, len(runes))
		for _, r := range runes {
			items = append(items, String(string(r)))
		}
		return items
	case KindNumber:
		return []Value{Number(v.Num)}
	case KindBool:
		return []Value{Bool(v.Flag)}
	case KindList:
		return v.Items
	case KindJSON:
		r := gjson.Parse(v.Str)
		if !r.IsObject() {
			return nil
		}
		var items []Value
		r.ForEach(func(key, _ gjson.Result) bool {
			items = append(items, String(key.Str))
			return true
		})
		return items
	case KindError:
		return []Value{Error(v.Str)}
	case KindObject:
		items := make([]Value, 0, len(v.Fields))
		for _, f := range v.Fields {
			items = append(items, f)
		}
		return items
	case KindBinary:
		items := make([]Value, 0, len(v.Bytes))
		for _, b := range v.Bytes {
			items = append(items, Number(float64(b)))
		}
		return items
	default:
		return nil
	}
}

// AsJSON coerces to a raw JSON document. Strings are parsed; anything
// that is not valid JSON becomes the empty object.
func (v Value) AsJSON() string {
	switch v.Kind {
	case KindJSON:
		return v.Str
	case KindString:
		if gjson.Valid(v.Str) {
			return v.Str
		}
		return "{}"
	default:
		return "{}"
	}
}

// Display renders the canonical display form, distinct from AsString:
// strings are parenthesised and lists show each element's display form.
func (v Value) Display() string {
	switch v.Kind {
	case KindNumber:
		return formatNumber(v.Num)
	case KindString:
		return "(" + v.Str + ")"
	case KindBool:
		return strconv.FormatBool(v.Flag)
	case KindList:
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			parts = append(parts, item.Display())
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindJSON:
		if !gjson.Valid(v.Str) {
			return "{}"
		}
		return strings.TrimSuffix(string(pretty.Pretty([]byte(v.Str))), "\n")
	case KindError:
		return "error:" + v.Str
	case KindObject:
		return "Object<" + v.Class + ">"
	case KindBinary:
		return "Binary<" + strconv.Itoa(len(v.Bytes)) + ">"
	default:
		return ""
	}
}

// Clone returns a deep copy. Thread forks and variable reads both hand
// out clones so no two executors ever share backing storage.
func (v Value) Clone() Value {
	out := v
	if v.Items != nil {
		out.Items = make([]Value, len(v.Items))
		for i, item := range v.Items {
			out.Items[i] = item.Clone()
		}
	}
	if v.Fields != nil {
		out.Fields = make(map[string]Value, len(v.Fields))
		for name, f := range v.Fields {
			out.Fields[name] = f.Clone()
		}
	}
	if v.Bytes != nil {
		out.Bytes = append([]byte(nil), v.Bytes...)
	}
	return out
}

// formatNumber renders a float the way the language prints numbers:
// shortest decimal text, no exponent notation.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
