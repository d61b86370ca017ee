package value

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindString
	KindNumber
	KindSeq
	KindMap
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindSeq:
		return "sequence"
	case KindMap:
		return "map"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Object is an opaque value exposed to templates. Objects answer attribute
// lookups themselves; a false second return means the attribute is unbound.
type Object interface {
	GetValue(key Value) (Value, bool)
}

// Value is the dynamic value passed between the config layer and template
// engines. The zero Value is none.
type Value struct {
	kind Kind
	b    bool
	s    string
	n    float64
	seq  []Value
	m    *Map
	obj  Object
}

// None returns the none value.
func None() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Number wraps a numeric value. Integers are stored as float64, the same way
// JSON decoding hands them over.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Int wraps an integer.
func Int(n int) Value { return Number(float64(n)) }

// Seq wraps a sequence. The slice is copied.
func Seq(items ...Value) Value {
	out := make([]Value, len(items))
	copy(out, items)
	return Value{kind: KindSeq, seq: out}
}

// FromMap wraps a Map. A nil map is treated as an empty one.
func FromMap(m *Map) Value {
	if m == nil {
		m = EmptyMap()
	}
	return Value{kind: KindMap, m: m}
}

// FromObject wraps an Object. A nil object yields none.
func FromObject(obj Object) Value {
	if obj == nil {
		return None()
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether v is the none value.
func (v Value) IsNone() bool { return v.kind == KindNone }

// AsString returns the string payload when v is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsBool returns the boolean payload when v is a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the numeric payload when v is a number.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.n, true
}

// AsSeq returns the items of a sequence. Callers must not modify them.
func (v Value) AsSeq() ([]Value, bool) {
	if v.kind != KindSeq {
		return nil, false
	}
	return v.seq, true
}

// AsMap interprets v as a nested mapping.
func (v Value) AsMap() (*Map, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

// AsObject returns the wrapped Object.
func (v Value) AsObject() (Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Truthy follows Jinja truthiness: none, false, zero and empty containers
// are false. Objects are always true.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s != ""
	case KindNumber:
		return v.n != 0
	case KindSeq:
		return len(v.seq) > 0
	case KindMap:
		return v.m.Len() > 0
	case KindObject:
		return true
	default:
		return false
	}
}

// String coerces v to its template string form.
func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "none"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindString:
		return v.s
	case KindNumber:
		return formatNumber(v.n)
	case KindSeq:
		parts := make([]string, 0, len(v.seq))
		for _, item := range v.seq {
			parts = append(parts, item.repr())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		return v.m.String()
	case KindObject:
		if s, ok := v.obj.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("<%T>", v.obj)
	default:
		return ""
	}
}

func (v Value) repr() string {
	if v.kind == KindString {
		return strconv.Quote(v.s)
	}
	return v.String()
}

// Interface converts v to plain Go data: nil, bool, string, float64 (or int
// for integral numbers), []any and map[string]any. Objects are returned as
// is so engines can inspect them.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindNumber:
		if isIntegral(v.n) {
			return int(v.n)
		}
		return v.n
	case KindSeq:
		out := make([]any, 0, len(v.seq))
		for _, item := range v.seq {
			out = append(out, item.Interface())
		}
		return out
	case KindMap:
		return v.m.Interface()
	case KindObject:
		return v.obj
	default:
		return nil
	}
}

// MarshalJSON encodes v. Objects that do not implement json.Marshaler are
// encoded as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindMap:
		return v.m.MarshalJSON()
	case KindSeq:
		return json.Marshal(v.seq)
	case KindObject:
		if m, ok := v.obj.(json.Marshaler); ok {
			return m.MarshalJSON()
		}
		return []byte("null"), nil
	default:
		return json.Marshal(v.Interface())
	}
}

// Equal reports structural equality. Objects compare by identity.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNone:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindNumber:
		return a.n == b.n
	case KindSeq:
		if len(a.seq) != len(b.seq) {
			return false
		}
		for i := range a.seq {
			if !Equal(a.seq[i], b.seq[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return a.m.Equal(b.m)
	case KindObject:
		return a.obj == b.obj
	default:
		return false
	}
}

// Equal lets go-cmp compare values structurally.
func (v Value) Equal(other Value) bool { return Equal(v, other) }

func isIntegral(n float64) bool {
	return n == math.Trunc(n) && !math.IsInf(n, 0) && math.Abs(n) < 1<<53
}

func formatNumber(n float64) string {
	if isIntegral(n) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
