package template

import (
	"io"

	"github.com/goliatone/go-runconfig/pkg/runconfig"
)

// TemplateRenderer renders templates with plain data. RenderConfig exposes
// cfg to the template as "config" alongside data.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RenderConfig(templateContent string, cfg *runconfig.Config, data map[string]any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
