package value

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// FromCty converts an HCL expression result. Unknown and null values map to
// none; sets convert to sequences.
func FromCty(val cty.Value) (Value, error) {
	if !val.IsKnown() || val.IsNull() {
		return None(), nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return String(val.AsString()), nil
	case ty == cty.Bool:
		return Bool(val.True()), nil
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return Number(f), nil
	case ty.IsObjectType() || ty.IsMapType():
		entries := make(map[string]Value)
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			converted, err := FromCty(v)
			if err != nil {
				return Value{}, fmt.Errorf("value: key %q: %w", k.AsString(), err)
			}
			entries[k.AsString()] = converted
		}
		return FromMap(NewMap(entries)), nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		items := make([]Value, 0)
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			converted, err := FromCty(v)
			if err != nil {
				return Value{}, err
			}
			items = append(items, converted)
		}
		return Value{kind: KindSeq, seq: items}, nil
	default:
		return Value{}, fmt.Errorf("value: unsupported cty type %s", ty.FriendlyName())
	}
}
