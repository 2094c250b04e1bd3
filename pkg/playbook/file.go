package playbook

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPlaybookFile is cleaned when no file is given.
const DefaultPlaybookFile = "unified-cloudflare-awx-playbook.yml"

// CleanFile cleans the playbook at path in place, keeping its file mode.
// With dryRun the file is left untouched. A cleaner built WithValidation
// returns an error instead of writing invalid YAML.
func CleanFile(path string, cleaner *Cleaner, dryRun bool) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat playbook: %w", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read playbook: %w", err)
	}

	res := cleaner.Clean(string(content))
	if cleaner.validate {
		if err := Validate(res.Content); err != nil {
			return res, err
		}
	}
	if dryRun {
		return res, nil
	}
	if err := os.WriteFile(path, []byte(res.Content), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("failed to write playbook: %w", err)
	}
	return res, nil
}

// Validate checks that content is still a parseable YAML document.
func Validate(content string) error {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return fmt.Errorf("cleaned playbook is not valid YAML: %w", err)
	}
	return nil
}
