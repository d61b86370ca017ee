// Package template defines the renderer seam used to evaluate model
// templates against a node's run configuration. Engines live in
// subpackages; gotemplate binds runconfig objects into pongo2 contexts.
package template
