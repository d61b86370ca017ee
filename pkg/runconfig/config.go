package runconfig

import (
	"log/slog"

	"github.com/goliatone/go-runconfig/pkg/args"
	"github.com/goliatone/go-runconfig/pkg/value"
)

// TypeName identifies Config in error messages.
const TypeName = "RunConfig"

const (
	keyModel       = "model"
	keyPersistDocs = "persist_docs"
)

// MethodCaller is implemented by objects that answer method calls from
// templates.
type MethodCaller interface {
	CallMethod(name string, args []value.Value) (value.Value, error)
}

var (
	_ value.Object = (*Config)(nil)
	_ MethodCaller = (*Config)(nil)
)

// Config exposes a node's resolved configuration to the execution render
// pass. The wrapped map is never modified, so a Config can be shared freely
// between goroutines.
type Config struct {
	values *value.Map
	logger *slog.Logger
}

// New wraps values. A nil map behaves as an empty configuration.
func New(values *value.Map, opts ...Option) *Config {
	if values == nil {
		values = value.EmptyMap()
	}
	o := applyOptions(opts)
	return &Config{values: values, logger: o.logger}
}

// FromMap builds a Config from plain Go data.
func FromMap(entries map[string]any, opts ...Option) (*Config, error) {
	values, err := value.MapFromAny(entries)
	if err != nil {
		return nil, err
	}
	return New(values, opts...), nil
}

// Values returns the wrapped map. A nil or zero Config holds an empty map.
func (c *Config) Values() *value.Map {
	if c == nil || c.values == nil {
		return value.EmptyMap()
	}
	return c.values
}

// GetValue answers attribute access. "model" yields a fresh ModelNode over
// the same configuration; other keys resolve against the map. Non-string
// keys resolve to nothing.
func (c *Config) GetValue(key value.Value) (value.Value, bool) {
	name, ok := key.AsString()
	if !ok {
		return value.Value{}, false
	}
	if name == keyModel {
		return value.FromObject(c.model()), true
	}
	return c.Values().Get(name)
}

// CallMethod dispatches config.<name>(...) calls.
func (c *Config) CallMethod(name string, callArgs []value.Value) (value.Value, error) {
	method, ok := ParseMethod(name)
	if !ok {
		c.log().Debug("runconfig: unknown method", "object", TypeName, "method", name)
		return value.Value{}, unknownMethod(name)
	}

	p := args.New(callArgs)
	switch method {
	case MethodGet:
		return c.get(p)
	case MethodSet:
		// config.set is collected by the compile pass; nothing happens here.
		if _, err := p.GetString("name"); err != nil {
			return value.Value{}, argumentError(name, err)
		}
		p.GetOptional("value")
		return value.String(""), argumentError(name, p.Finish())
	case MethodRequire:
		// Required keys were validated upstream.
		if _, err := p.GetString("name"); err != nil {
			return value.Value{}, argumentError(name, err)
		}
		return value.String(""), argumentError(name, p.Finish())
	case MethodPersistRelationDocs:
		if err := p.Finish(); err != nil {
			return value.Value{}, argumentError(name, err)
		}
		return c.persistDocs(name, "relation")
	case MethodPersistColumnDocs:
		if err := p.Finish(); err != nil {
			return value.Value{}, argumentError(name, err)
		}
		return c.persistDocs(name, "columns")
	default:
		return value.Value{}, unknownMethod(name)
	}
}

func (c *Config) get(p *args.Parser) (value.Value, error) {
	method := MethodGet.String()
	key, err := p.GetString("name")
	if err != nil {
		return value.Value{}, argumentError(method, err)
	}
	fallback := p.GetOr("default", value.None())
	if err := p.Finish(); err != nil {
		return value.Value{}, argumentError(method, err)
	}

	if v, ok := c.Values().Get(key); ok && !v.IsNone() {
		return v, nil
	}
	return fallback, nil
}

func (c *Config) persistDocs(method, entry string) (value.Value, error) {
	raw, ok := c.Values().Get(keyPersistDocs)
	if !ok || raw.IsNone() {
		return value.Bool(false), nil
	}
	docs, ok := raw.AsMap()
	if !ok {
		c.log().Debug("runconfig: persist_docs is not a mapping", "kind", raw.Kind().String())
		return value.Value{}, invalidConfig(method, "persist_docs must be a dictionary")
	}
	if v, ok := docs.Get(entry); ok && !v.IsNone() {
		return v, nil
	}
	return value.Bool(false), nil
}

func (c *Config) model() *ModelNode {
	values := value.NormalizeMap(c.Values())
	c.log().Debug("runconfig: built model facade", "keys", values.Len())
	return &ModelNode{values: values}
}

func (c *Config) log() *slog.Logger {
	if c == nil || c.logger == nil {
		return discardLogger
	}
	return c.logger
}

func (c *Config) String() string {
	return TypeName + c.Values().String()
}
