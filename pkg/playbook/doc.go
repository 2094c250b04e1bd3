// Package playbook removes known debug tasks from generated workflow playbooks
// and optionally retitles tasks with categorized output names.
package playbook
