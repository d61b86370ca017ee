package runconfig_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-runconfig/pkg/runconfig"
	"github.com/goliatone/go-runconfig/pkg/testsupport"
	"github.com/goliatone/go-runconfig/pkg/value"
)

func TestConfig_FromYAMLFixture(t *testing.T) {
	cfg := runconfig.New(testsupport.MustLoadConfigMap(t, filepath.Join("testdata", "orders.yaml")))

	cases := []struct {
		method string
		args   []value.Value
		want   value.Value
	}{
		{method: "get", args: []value.Value{value.String("unique_key")}, want: value.String("order_id")},
		{method: "get", args: []value.Value{value.String("schema"), value.String("analytics")}, want: value.String("analytics")},
		{method: "get", args: []value.Value{value.String("tags")}, want: value.Seq(value.String("nightly"), value.String("finance"))},
		{method: "persist_relation_docs", want: value.Bool(true)},
		{method: "persist_column_docs", want: value.Bool(true)},
		{method: "require", args: []value.Value{value.String("unique_key")}, want: value.String("")},
	}

	for _, tc := range cases {
		got, err := cfg.CallMethod(tc.method, tc.args)
		if err != nil {
			t.Fatalf("%s: %v", tc.method, err)
		}
		if diff := testsupport.DiffValues(tc.want, got); diff != "" {
			t.Fatalf("%s%v mismatch (-want +got):\n%s", tc.method, tc.args, diff)
		}
	}

	model, _ := cfg.GetValue(value.String("model"))
	node, _ := model.AsObject()
	alias, ok := node.GetValue(value.String("alias"))
	if !ok || !value.Equal(alias, value.String("orders")) {
		t.Fatalf("model.alias = %s (bound %v)", alias, ok)
	}
}
