// Package runconfig exposes a node's resolved configuration to templates
// during the execution render pass.
//
// A Config answers attribute lookups (config.materialized) straight from
// the map and method calls through a fixed set of methods:
//
//	config.get(name, default=none)   bound value, or default when absent or none
//	config.set(name, value)          no-op, returns ""
//	config.require(name)             no-op, returns ""
//	config.persist_relation_docs()   persist_docs.relation, default false
//	config.persist_column_docs()     persist_docs.columns, default false
//
// Reading config.model returns a ModelNode built on demand that re-exposes
// the same map as model.config, keeping model.config.x and model.x in step.
package runconfig
