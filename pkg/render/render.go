package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"

	"github.com/telekom/cfctl/pkg/naming"
)

// Renderer renders Go templates with Sprig plus the naming helpers.
type Renderer struct {
	strict bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStrict makes references to missing values fail execution.
func WithStrict() Option {
	return func(r *Renderer) {
		r.strict = true
	}
}

// NewRenderer creates a new template renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderString renders templateStr with values as the template data.
func (r *Renderer) RenderString(templateStr string, values map[string]any) ([]byte, error) {
	if templateStr == "" {
		return nil, errors.New("template string is empty")
	}

	tmpl := template.New("template").Funcs(r.buildFuncMap())
	if r.strict {
		tmpl = tmpl.Option("missingkey=error")
	}
	tmpl, err := tmpl.Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	if values == nil {
		values = map[string]any{}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderFile reads a template file and renders it.
func (r *Renderer) RenderFile(path string, values map[string]any) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return r.RenderString(string(content), values)
}

// ValidateYAML checks that every document in data is valid YAML.
func ValidateYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for i := 1; ; i++ {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("document %d: invalid YAML: %w", i, err)
		}
	}
}

// buildFuncMap creates the template function map with Sprig and the naming functions.
func (r *Renderer) buildFuncMap() template.FuncMap {
	funcMap := sprig.TxtFuncMap()

	for name, fn := range naming.FuncMap() {
		funcMap[name] = fn
	}
	funcMap["required"] = requiredFunc
	funcMap["yamlQuote"] = yamlQuote

	return funcMap
}

// requiredFunc returns an error if the value is empty.
func requiredFunc(msg string, val any) (any, error) {
	if val == nil {
		return nil, fmt.Errorf("required value is missing: %s", msg)
	}
	if s, ok := val.(string); ok && s == "" {
		return nil, fmt.Errorf("required value is empty: %s", msg)
	}
	return val, nil
}

// yamlQuote double-quotes s when it would otherwise be read as YAML syntax.
func yamlQuote(s string) string {
	needsQuoting := len(s) == 0 ||
		strings.ContainsAny(s, ":#{}[]|>!&*?-'\"\\`@,\n\r\t ") ||
		isYAMLSpecialWord(s)
	if !needsQuoting {
		return s
	}

	escaped := strings.ReplaceAll(s, "\\", "\\\\")
	escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
	escaped = strings.ReplaceAll(escaped, "\n", "\\n")
	escaped = strings.ReplaceAll(escaped, "\r", "\\r")
	escaped = strings.ReplaceAll(escaped, "\t", "\\t")

	return "\"" + escaped + "\""
}

func isYAMLSpecialWord(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false", "yes", "no", "on", "off", "null", "~":
		return true
	}
	return false
}
