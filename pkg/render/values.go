package render

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadValues reads a YAML mapping from path. An empty path yields an empty map.
func LoadValues(path string) (map[string]any, error) {
	values := map[string]any{}
	if path == "" {
		return values, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	if err := yaml.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("failed to parse values %s: %w", path, err)
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}

// ApplySet merges key=value assignments into values. Dotted keys address nested maps;
// intermediate values that are not maps are replaced.
func ApplySet(values map[string]any, assignments []string) error {
	for _, assignment := range assignments {
		key, value, ok := strings.Cut(assignment, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid assignment %q: expected key=value", assignment)
		}

		parts := strings.Split(key, ".")
		current := values
		for _, part := range parts[:len(parts)-1] {
			if part == "" {
				return fmt.Errorf("invalid key %q", key)
			}
			next, ok := current[part].(map[string]any)
			if !ok {
				next = map[string]any{}
				current[part] = next
			}
			current = next
		}
		last := parts[len(parts)-1]
		if last == "" {
			return fmt.Errorf("invalid key %q", key)
		}
		current[last] = value
	}
	return nil
}
