package naming

import (
	"fmt"
	"text/template"

	"github.com/spf13/cast"
)

// FuncMap returns the naming helpers as template functions.
//
// normalizeName takes the name last so it can be used at the end of a pipeline:
//
//	{{ .name | normalizeName "example.com" "prod" "api" "new" }}
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"sanitizeLabel": SanitizeValue,
		"normalizeName": func(domain, env, service, pattern, name any) string {
			return NormalizeName(toString(name), toString(domain), toString(env), toString(service), toString(pattern))
		},
		"recordName": func(zone, label any) (string, error) {
			return RecordName(toString(label), toString(zone))
		},
	}
}

// SanitizeValue coerces v to a string and sanitizes it. A nil value yields "".
func SanitizeValue(v any) string {
	return SanitizeLabel(toString(v))
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
