package configfile_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-runconfig/pkg/configfile"
	"github.com/goliatone/go-runconfig/pkg/value"
)

func ordersMap() *value.Map {
	return value.NewMap(map[string]value.Value{
		"materialized": value.String("incremental"),
		"alias":        value.String("orders"),
		"persist_docs": value.FromMap(value.NewMap(map[string]value.Value{
			"relation": value.Bool(true),
			"columns":  value.Bool(false),
		})),
		"tags": value.Seq(value.String("nightly")),
	})
}

func TestDecode_Formats(t *testing.T) {
	cases := map[string]string{
		"orders.yaml": `
materialized: incremental
alias: orders
persist_docs:
  relation: true
  columns: false
tags: [nightly]
`,
		"orders.json": `{
  "materialized": "incremental",
  "alias": "orders",
  "persist_docs": {"relation": true, "columns": false},
  "tags": ["nightly"]
}`,
		"orders.hcl": `
materialized = "incremental"
alias        = "orders"
persist_docs = {
  relation = true
  columns  = false
}
tags = ["nightly"]
`,
	}

	for source, data := range cases {
		t.Run(source, func(t *testing.T) {
			got, err := configfile.Decode(source, []byte(data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(ordersMap(), got); diff != "" {
				t.Fatalf("decoded map mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		source string
		data   string
		want   string
	}{
		{source: "orders.toml", data: "a = 1", want: "unsupported file type"},
		{source: "notes.txt", data: "", want: "unsupported file type"},
		{source: "blank.txt", data: "  \n", want: "unsupported file type"},
		{source: "orders.yaml", data: "- a\n- b\n", want: "must contain a mapping"},
		{source: "orders.json", data: "{", want: "parse orders.json"},
		{source: "orders.hcl", data: "block {\n}\n", want: "decode orders.hcl"},
	}

	for _, tc := range cases {
		t.Run(tc.source, func(t *testing.T) {
			_, err := configfile.Decode(tc.source, []byte(tc.data))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestDecode_EmptyFileIsEmptyMap(t *testing.T) {
	got, err := configfile.Decode("empty.yaml", []byte("  \n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Len() != 0 {
		t.Fatalf("expected empty map, got %s", got)
	}
}

func TestLoadDirFS(t *testing.T) {
	fsys := fstest.MapFS{
		"models/orders.yaml":        {Data: []byte("materialized: table\n")},
		"models/staging/events.hcl": {Data: []byte("materialized = \"view\"\n")},
		"models/README.md":          {Data: []byte("# not a config")},
		"models/staging/users.json": {Data: []byte(`{"persist_docs": "oops"}`)},
	}

	store, err := configfile.LoadDirFS(context.Background(), fsys)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}

	if diff := cmp.Diff([]string{"events", "orders", "users"}, store.Names()); diff != "" {
		t.Fatalf("node names mismatch (-want +got):\n%s", diff)
	}

	cfg, ok := store.Config("events")
	if !ok {
		t.Fatalf("events config missing")
	}
	got, err := cfg.CallMethod("get", []value.Value{value.String("materialized")})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !value.Equal(got, value.String("view")) {
		t.Fatalf("events materialized = %s", got)
	}

	users, _ := store.Config("users")
	if _, err := users.CallMethod("persist_relation_docs", nil); err == nil {
		t.Fatalf("expected invalid persist_docs error for users")
	}
}

func TestLoadDirFS_DuplicateNodes(t *testing.T) {
	fsys := fstest.MapFS{
		"a/orders.yaml": {Data: []byte("alias: a\n")},
		"b/orders.json": {Data: []byte(`{"alias": "b"}`)},
	}

	_, err := configfile.LoadDirFS(context.Background(), fsys)
	if err == nil || !strings.Contains(err.Error(), `duplicate node "orders"`) {
		t.Fatalf("expected duplicate node error, got %v", err)
	}
}

func TestLoadDirFS_NilFS(t *testing.T) {
	store, err := configfile.LoadDirFS(context.Background(), nil)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestLoadFS_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fsys := fstest.MapFS{"orders.yaml": {Data: []byte("alias: orders\n")}}
	if _, err := configfile.LoadFS(ctx, fsys, "orders.yaml"); err == nil {
		t.Fatalf("expected context error")
	}
}
