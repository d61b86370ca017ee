// Package configfile reads resolved node configurations from JSON, YAML or
// HCL files. Each file holds one node's configuration as a top-level
// mapping; the node is named after the file.
package configfile

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/goliatone/go-runconfig/pkg/runconfig"
	"github.com/goliatone/go-runconfig/pkg/value"
)

// Option configures the loader.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger records file reads on logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func newConfig(options []Option) *config {
	cfg := &config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return cfg
}

// Store holds node configurations keyed by node name.
type Store struct {
	nodes map[string]*value.Map
}

// Node returns the configuration map for name.
func (s *Store) Node(name string) (*value.Map, bool) {
	if s == nil {
		return nil, false
	}
	m, ok := s.nodes[strings.TrimSpace(name)]
	return m, ok
}

// Config wraps the node's map in a runconfig.Config.
func (s *Store) Config(name string, opts ...runconfig.Option) (*runconfig.Config, bool) {
	m, ok := s.Node(name)
	if !ok {
		return nil, false
	}
	return runconfig.New(m, opts...), true
}

// Names lists the loaded node names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.nodes))
	for name := range s.nodes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Empty reports whether no node was loaded.
func (s *Store) Empty() bool {
	return s == nil || len(s.nodes) == 0
}

// LoadFS reads and decodes a single configuration file.
func LoadFS(ctx context.Context, fsys fs.FS, name string, options ...Option) (*value.Map, error) {
	cfg := newConfig(options)
	if fsys == nil {
		return nil, fmt.Errorf("configfile: nil filesystem for %s", name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("configfile: read %s: %w", name, err)
	}
	cfg.logger.DebugContext(ctx, "configfile: read", "path", name, "bytes", len(data))
	return Decode(name, data)
}

// LoadDirFS walks fsys and loads every configuration file it finds. Node
// names must be unique across directories.
func LoadDirFS(ctx context.Context, fsys fs.FS, options ...Option) (*Store, error) {
	cfg := newConfig(options)
	store := &Store{nodes: make(map[string]*value.Map)}
	if fsys == nil {
		return store, nil
	}
	sources := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !IsConfigFile(p) {
			return nil
		}

		name := NodeName(p)
		if name == "" {
			return fmt.Errorf("configfile: file %s has no node name", p)
		}
		if prev, exists := sources[name]; exists {
			return fmt.Errorf("configfile: duplicate node %q (files %s and %s)", name, prev, p)
		}

		m, err := LoadFS(ctx, fsys, p, options...)
		if err != nil {
			return err
		}
		sources[name] = p
		store.nodes[name] = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	cfg.logger.DebugContext(ctx, "configfile: loaded nodes", "count", len(store.nodes))
	return store, nil
}

// Decode parses data according to the extension of source.
func Decode(source string, data []byte) (*value.Map, error) {
	if !IsConfigFile(source) {
		return nil, fmt.Errorf("configfile: unsupported file type %s", source)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return value.EmptyMap(), nil
	}

	var (
		v   value.Value
		err error
	)
	switch ext(source) {
	case ".json":
		v, err = value.FromJSON(data)
	case ".yaml", ".yml":
		v, err = value.FromYAML(data)
	case ".hcl":
		return decodeHCL(source, data)
	default:
		return nil, fmt.Errorf("configfile: unsupported file type %s", source)
	}
	if err != nil {
		return nil, fmt.Errorf("configfile: parse %s: %w", source, err)
	}
	if v.IsNone() {
		return value.EmptyMap(), nil
	}
	m, ok := v.AsMap()
	if !ok {
		return nil, fmt.Errorf("configfile: %s must contain a mapping, got %s", source, v.Kind())
	}
	return m, nil
}

// IsConfigFile reports whether p has a supported extension.
func IsConfigFile(p string) bool {
	switch ext(p) {
	case ".json", ".yaml", ".yml", ".hcl":
		return true
	default:
		return false
	}
}

// NodeName derives a node name from a file path.
func NodeName(p string) string {
	base := path.Base(p)
	return strings.TrimSpace(strings.TrimSuffix(base, path.Ext(base)))
}

func ext(p string) string {
	return strings.ToLower(path.Ext(p))
}

func decodeHCL(source string, data []byte) (*value.Map, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, source)
	if diags.HasErrors() {
		return nil, fmt.Errorf("configfile: parse %s: %s", source, diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("configfile: decode %s: %s", source, diags.Error())
	}

	entries := make(map[string]value.Value, len(attrs))
	for name, attr := range attrs {
		raw, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("configfile: evaluate %s in %s: %s", name, source, diags.Error())
		}
		converted, err := value.FromCty(raw)
		if err != nil {
			return nil, fmt.Errorf("configfile: convert %s in %s: %w", name, source, err)
		}
		entries[name] = converted
	}
	return value.NewMap(entries), nil
}
