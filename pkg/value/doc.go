// Package value defines the dynamic values exchanged between resolved build
// configuration and template engines: a tagged Value (none, bool, string,
// number, sequence, map, object), an immutable key-sorted Map, and
// normalization helpers that turn plain Go, JSON, YAML and HCL (cty) data
// into Values.
package value
