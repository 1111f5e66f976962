// Package values models the loosely typed values the client passes around
// (nil, strings, numbers, lists, dictionaries, sets) as a closed set of
// tagged variants, and provides emptiness, equality and ordering over them.
package values

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindSequence
	KindMapping
	KindSet
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindSet:
		return "set"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an immutable tagged value. The zero Value is null.
type Value struct {
	kind    Kind
	isFloat bool
	i       int64
	f       float64
	s       string
	items   []Value
	entries map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// String wraps a string.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Int wraps an integer.
func Int(n int64) Value {
	return Value{kind: KindNumber, i: n}
}

// Float wraps a floating point number.
func Float(f float64) Value {
	return Value{kind: KindNumber, isFloat: true, f: f}
}

// Sequence wraps an ordered list of values.
func Sequence(items ...Value) Value {
	cloned := make([]Value, len(items))
	copy(cloned, items)
	return Value{kind: KindSequence, items: cloned}
}

// Mapping wraps a string-keyed dictionary.
func Mapping(entries map[string]Value) Value {
	cloned := make(map[string]Value, len(entries))
	for key, value := range entries {
		cloned[key] = value
	}
	return Value{kind: KindMapping, entries: cloned}
}

// Set wraps an unordered collection; members equal under AreEqual are kept once.
func Set(items ...Value) Value {
	members := make([]Value, 0, len(items))
	for _, item := range items {
		if !containsEqual(members, item) {
			members = append(members, item)
		}
	}
	return Value{kind: KindSet, items: members}
}

// Of converts a native Go value into a Value.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return fromUnsigned(uint64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return fromUnsigned(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case []Value:
		return Sequence(x...)
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = Of(item)
		}
		return Value{kind: KindSequence, items: items}
	case []string:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = String(item)
		}
		return Value{kind: KindSequence, items: items}
	case map[string]any:
		entries := make(map[string]Value, len(x))
		for key, item := range x {
			entries[key] = Of(item)
		}
		return Value{kind: KindMapping, entries: entries}
	case map[string]string:
		entries := make(map[string]Value, len(x))
		for key, item := range x {
			entries[key] = String(item)
		}
		return Value{kind: KindMapping, entries: entries}
	case fmt.Stringer:
		return String(x.String())
	default:
		return String(fmt.Sprint(x))
	}
}

func fromUnsigned(n uint64) Value {
	if n > math.MaxInt64 {
		return Float(float64(n))
	}
	return Int(int64(n))
}

// Kind reports the variant.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Len returns the byte length of a string or the element count of a
// collection. Null and numbers report 0.
func (v Value) Len() int {
	switch v.kind {
	case KindString:
		return len(v.s)
	case KindSequence, KindSet:
		return len(v.items)
	case KindMapping:
		return len(v.entries)
	default:
		return 0
	}
}

// Str returns the string content and whether v is a string.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

// Float64 returns the numeric value and whether v is a number.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if v.isFloat {
		return v.f, true
	}
	return float64(v.i), true
}

// Items returns a copy of the elements of a sequence or set.
func (v Value) Items() []Value {
	if v.kind != KindSequence && v.kind != KindSet {
		return nil
	}
	out := make([]Value, len(v.items))
	copy(out, v.items)
	return out
}

// Lookup returns the mapping entry for key.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	item, ok := v.entries[key]
	return item, ok
}

func containsEqual(items []Value, target Value) bool {
	for _, item := range items {
		if AreEqual(item, target) {
			return true
		}
	}
	return false
}
