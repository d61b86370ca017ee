package gotemplate

import (
	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-runconfig/pkg/runconfig"
	"github.com/goliatone/go-runconfig/pkg/value"
)

// pongo2 resolves attributes on maps and cannot ask an object lazily, so a
// Config is flattened into a map per render: its keys, the model facade,
// and one callable per method. Methods shadow keys with the same name.
func bindConfig(cfg *runconfig.Config) map[string]any {
	out := bindMap(cfg.Values())
	if model, ok := cfg.GetValue(value.String("model")); ok {
		out["model"] = bindValue(model)
	}
	for _, method := range runconfig.Methods() {
		out[method.String()] = methodFunc(cfg, method.String())
	}
	return out
}

func bindModel(node *runconfig.ModelNode) map[string]any {
	out := bindMap(node.Config())
	if cfg, ok := node.GetValue(value.String("config")); ok {
		out["config"] = bindValue(cfg)
	}
	return out
}

func bindMap(m *value.Map) map[string]any {
	out := make(map[string]any, m.Len())
	m.Range(func(key string, val value.Value) bool {
		out[key] = bindValue(val)
		return true
	})
	return out
}

func bindValue(v value.Value) any {
	switch v.Kind() {
	case value.KindMap:
		m, _ := v.AsMap()
		return bindMap(m)
	case value.KindSeq:
		items, _ := v.AsSeq()
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, bindValue(item))
		}
		return out
	case value.KindObject:
		obj, _ := v.AsObject()
		switch o := obj.(type) {
		case *runconfig.Config:
			return bindConfig(o)
		case *runconfig.ModelNode:
			return bindModel(o)
		default:
			return o
		}
	default:
		return v.Interface()
	}
}

func methodFunc(caller runconfig.MethodCaller, name string) func(...*pongo2.Value) (*pongo2.Value, error) {
	return func(params ...*pongo2.Value) (*pongo2.Value, error) {
		callArgs := make([]value.Value, 0, len(params))
		for _, param := range params {
			var raw any
			if param != nil {
				raw = param.Interface()
			}
			arg, err := value.FromAny(raw)
			if err != nil {
				return nil, err
			}
			callArgs = append(callArgs, arg)
		}
		result, err := caller.CallMethod(name, callArgs)
		if err != nil {
			return nil, err
		}
		return pongo2.AsValue(bindValue(result)), nil
	}
}
