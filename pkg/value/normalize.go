package value

import (
	"encoding/json"
	"fmt"
)

// FromAny converts plain Go data into a Value. Scalars, slices and string
// keyed maps convert directly; anything else (structs, typed slices) goes
// through a JSON round-trip first, so exported fields and json tags decide
// the resulting shape.
func FromAny(in any) (Value, error) {
	switch v := in.(type) {
	case nil:
		return None(), nil
	case Value:
		return v, nil
	case *Map:
		return FromMap(v), nil
	case Object:
		return FromObject(v), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Number(float64(v)), nil
	case int8:
		return Number(float64(v)), nil
	case int16:
		return Number(float64(v)), nil
	case int32:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case uint:
		return Number(float64(v)), nil
	case uint8:
		return Number(float64(v)), nil
	case uint16:
		return Number(float64(v)), nil
	case uint32:
		return Number(float64(v)), nil
	case uint64:
		return Number(float64(v)), nil
	case float32:
		return Number(float64(v)), nil
	case float64:
		return Number(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("value: number %q: %w", v.String(), err)
		}
		return Number(f), nil
	case []any:
		return convertSlice(v)
	case []string:
		items := make([]Value, 0, len(v))
		for _, item := range v {
			items = append(items, String(item))
		}
		return Value{kind: KindSeq, seq: items}, nil
	case map[string]any:
		m, err := convertMap(v)
		if err != nil {
			return Value{}, err
		}
		return FromMap(m), nil
	case map[any]any:
		entries := make(map[string]any, len(v))
		for key, item := range v {
			entries[fmt.Sprint(key)] = item
		}
		m, err := convertMap(entries)
		if err != nil {
			return Value{}, err
		}
		return FromMap(m), nil
	default:
		raw, err := jsonToAny(v)
		if err != nil {
			return Value{}, fmt.Errorf("value: normalize %T: %w", in, err)
		}
		return FromAny(raw)
	}
}

// MapFromAny converts a string keyed Go map into a Map.
func MapFromAny(in map[string]any) (*Map, error) {
	return convertMap(in)
}

// Normalize returns a deep copy of v that shares no sequence or map
// containers with it. Kinds are preserved; objects are kept by identity.
func Normalize(v Value) Value {
	switch v.kind {
	case KindSeq:
		items := make([]Value, len(v.seq))
		for idx, item := range v.seq {
			items[idx] = Normalize(item)
		}
		return Value{kind: KindSeq, seq: items}
	case KindMap:
		return FromMap(NormalizeMap(v.m))
	default:
		return v
	}
}

// NormalizeMap is Normalize for a Map. A nil map yields an empty one.
func NormalizeMap(m *Map) *Map {
	entries := make(map[string]Value, m.Len())
	m.Range(func(key string, item Value) bool {
		entries[key] = Normalize(item)
		return true
	})
	return NewMap(entries)
}

func convertMap(in map[string]any) (*Map, error) {
	entries := make(map[string]Value, len(in))
	for key, raw := range in {
		converted, err := FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("value: key %q: %w", key, err)
		}
		entries[key] = converted
	}
	return NewMap(entries), nil
}

func convertSlice(in []any) (Value, error) {
	items := make([]Value, 0, len(in))
	for idx, raw := range in {
		converted, err := FromAny(raw)
		if err != nil {
			return Value{}, fmt.Errorf("value: index %d: %w", idx, err)
		}
		items = append(items, converted)
	}
	return Value{kind: KindSeq, seq: items}, nil
}

func jsonToAny(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
