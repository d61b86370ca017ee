package value

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Map is an immutable mapping from string keys to Values. Iteration follows
// ascending key order. A nil *Map behaves as an empty map.
type Map struct {
	keys   []string
	values map[string]Value
}

// EmptyMap returns a map without entries.
func EmptyMap() *Map {
	return &Map{values: map[string]Value{}}
}

// NewMap builds a Map from entries. The input is copied.
func NewMap(entries map[string]Value) *Map {
	m := &Map{
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]Value, len(entries)),
	}
	for key, val := range entries {
		m.keys = append(m.keys, key)
		m.values[key] = val
	}
	sort.Strings(m.keys)
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value bound to key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in iteration order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Range calls fn for every entry in key order until fn returns false.
func (m *Map) Range(fn func(key string, val Value) bool) {
	if m == nil {
		return
	}
	for _, key := range m.keys {
		if !fn(key, m.values[key]) {
			return
		}
	}
}

// With returns a copy of m with key bound to val. m is left untouched.
func (m *Map) With(key string, val Value) *Map {
	entries := make(map[string]Value, m.Len()+1)
	m.Range(func(k string, v Value) bool {
		entries[k] = v
		return true
	})
	entries[key] = val
	return NewMap(entries)
}

// GetValue lets a Map act as an Object.
func (m *Map) GetValue(key Value) (Value, bool) {
	s, ok := key.AsString()
	if !ok {
		return Value{}, false
	}
	return m.Get(s)
}

// Equal reports whether both maps hold the same keys bound to equal values.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	equal := true
	m.Range(func(key string, val Value) bool {
		o, ok := other.Get(key)
		if !ok || !Equal(val, o) {
			equal = false
		}
		return equal
	})
	return equal
}

// Interface converts the map to map[string]any.
func (m *Map) Interface() map[string]any {
	out := make(map[string]any, m.Len())
	m.Range(func(key string, val Value) bool {
		out[key] = val.Interface()
		return true
	})
	return out
}

func (m *Map) String() string {
	parts := make([]string, 0, m.Len())
	m.Range(func(key string, val Value) bool {
		parts = append(parts, strconv.Quote(key)+": "+val.repr())
		return true
	})
	return "{" + strings.Join(parts, ", ") + "}"
}

// MarshalJSON encodes the map with keys in iteration order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	i := 0
	m.Range(func(key string, val Value) bool {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		var kb, vb []byte
		if kb, err = json.Marshal(key); err != nil {
			return false
		}
		if vb, err = val.MarshalJSON(); err != nil {
			return false
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
