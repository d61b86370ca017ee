package runconfig

import "github.com/goliatone/go-runconfig/pkg/value"

const keyConfig = "config"

var _ value.Object = (*ModelNode)(nil)

// ModelNode mirrors a Config as the parent node so templates can write
// model.config.x. Every key is also reachable directly as model.x.
type ModelNode struct {
	values *value.Map
}

// Config returns the node's configuration map.
func (n *ModelNode) Config() *value.Map {
	if n == nil {
		return value.EmptyMap()
	}
	return n.values
}

// GetValue resolves "config" to the whole map and any other string key
// against the map itself.
func (n *ModelNode) GetValue(key value.Value) (value.Value, bool) {
	name, ok := key.AsString()
	if !ok || n == nil {
		return value.Value{}, false
	}
	if name == keyConfig {
		return value.FromMap(n.values), true
	}
	return n.values.Get(name)
}

func (n *ModelNode) String() string {
	return "ModelNode" + n.Config().String()
}
