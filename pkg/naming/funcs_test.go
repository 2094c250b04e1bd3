package naming

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, text string, data any) (string, error) {
	t.Helper()
	tmpl, err := template.New("test").Funcs(FuncMap()).Parse(text)
	require.NoError(t, err)
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	return buf.String(), err
}

func TestFuncMap(t *testing.T) {
	data := map[string]any{
		"name":    "host42",
		"service": "My Service",
		"count":   7,
	}

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"normalize in pipeline", `{{ .name | normalizeName "example.com" "prod" "api" "new" }}`, "prod42-api"},
		{"normalize with unknown pattern", `{{ normalizeName "d.com" "e" "svc" "bogus" "Host" }}`, "host-svc"},
		{"sanitize string", `{{ .service | sanitizeLabel }}`, "my-service"},
		{"sanitize number", `{{ sanitizeLabel .count }}`, "7"},
		{"sanitize missing value", `[{{ sanitizeLabel .missing }}]`, "[]"},
		{"record name", `{{ recordName "example.com" (.name | normalizeName "" "prod" "" "new") }}`, "prod42.example.com."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := renderString(t, tt.template, data)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestFuncMapRecordNameError(t *testing.T) {
	_, err := renderString(t, `{{ recordName "" "www" }}`, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "zone is required")
}

func TestSanitizeValue(t *testing.T) {
	require.Equal(t, "", SanitizeValue(nil))
	require.Equal(t, "42", SanitizeValue(42))
	require.Equal(t, "true", SanitizeValue(true))
	require.Equal(t, "mixed-case", SanitizeValue("Mixed Case"))
	require.Equal(t, "a-b", SanitizeValue([]byte("A b")))
}
