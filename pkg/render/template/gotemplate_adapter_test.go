package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-runconfig/pkg/render/template/gotemplate"
	"github.com/goliatone/go-runconfig/pkg/runconfig"
	"github.com/goliatone/go-runconfig/pkg/testsupport"
)

//go:embed testdata/templates/*.sql
var embeddedTemplates embed.FS

func ordersConfig(t *testing.T) *runconfig.Config {
	return testsupport.MustConfig(t, map[string]any{
		"materialized": "table",
		"alias":        "orders",
		"schema":       nil,
		"threads":      8,
		"persist_docs": map[string]any{"relation": true, "columns": false},
	})
}

func TestGoTemplateEngine_RenderTemplateWithConfig(t *testing.T) {
	engine := newEngine(t)
	data := map[string]any{
		"config": ordersConfig(t),
		"source": "raw.orders",
	}

	for _, name := range []string{"model", "docs"} {
		t.Run(name, func(t *testing.T) {
			result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
				return engine.RenderTemplate(name, data, w)
			})

			goldenPath := filepath.Join("testdata", name+".golden")
			if testsupport.WriteMaybeGolden(t, goldenPath, []byte(result)) {
				return
			}
			want := testsupport.MustReadGoldenString(t, goldenPath)
			if result != want {
				t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
			}
			if written != want {
				t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
			}
		})
	}
}

func TestGoTemplateEngine_RenderConfig(t *testing.T) {
	engine := newEngine(t)
	cfg := ordersConfig(t)

	cases := []struct {
		name     string
		template string
		want     string
	}{
		{name: "attribute", template: `{{ config.alias }}`, want: "orders"},
		{name: "get default", template: `{{ config.get("missing", "fallback") }}`, want: "fallback"},
		{name: "get none uses default", template: `{{ config.get("schema", "analytics") }}`, want: "analytics"},
		{name: "get number", template: `{{ config.get("threads") }}`, want: "8"},
		{name: "set and require", template: `[{{ config.set("alias", "x") }}{{ config.require("missing") }}]`, want: "[]"},
		{name: "set leaves config", template: `{{ config.set("alias", "x") }}{{ config.alias }}`, want: "orders"},
		{
			name:     "model facade",
			template: `{{ config.model.config.alias }}|{{ config.model.alias }}|{{ config.model.config.materialized }}`,
			want:     "orders|orders|table",
		},
		{
			name:     "column docs disabled",
			template: `{% if config.persist_column_docs() %}yes{% else %}no{% endif %}`,
			want:     "no",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.RenderConfig(tc.template, cfg, nil)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tc.want {
				t.Fatalf("render mismatch\nwant: %q\n got: %q", tc.want, got)
			}
		})
	}
}

func TestGoTemplateEngine_RenderConfigErrors(t *testing.T) {
	engine := newEngine(t)

	cases := []struct {
		name     string
		entries  map[string]any
		template string
		want     string
	}{
		{
			name:     "persist docs not a mapping",
			entries:  map[string]any{"persist_docs": "oops"},
			template: `{{ config.persist_relation_docs() }}`,
			want:     "persist_docs must be a dictionary",
		},
		{
			name:     "get without name",
			entries:  map[string]any{},
			template: `{{ config.get() }}`,
			want:     "missing argument",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testsupport.MustConfig(t, tc.entries)
			_, err := engine.RenderConfig(tc.template, cfg, nil)
			if err == nil {
				t.Fatalf("expected render error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestGoTemplateEngine_RenderConfigNil(t *testing.T) {
	engine := newEngine(t)

	_, err := engine.RenderConfig(`{{ config.get("a", "d") }}`, nil, nil)
	if err == nil || err.Error() != "gotemplate: config is nil" {
		t.Fatalf("expected nil config error, got %v", err)
	}

	var nilCfg *runconfig.Config
	got, err := engine.RenderString(`{{ config.get("a", "d") }}`, map[string]any{"config": nilCfg})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "d" {
		t.Fatalf("render mismatch: %q", got)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"target": map[string]any{"schema": "prod"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	got, err := engine.RenderConfig(`{{ target.schema }}.{{ config.alias }}`, ordersConfig(t), nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "prod.orders" {
		t.Fatalf("render mismatch: %q", got)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("upper_ident", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return strings.ToUpper(fmt.Sprint(input)), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	got, err := engine.RenderConfig(`{{ config.alias|upper_ident }}`, ordersConfig(t), nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ORDERS" {
		t.Fatalf("render mismatch: %q", got)
	}

	if err := engine.RegisterFilter("upper_ident", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
