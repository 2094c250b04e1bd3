package awx

import (
	"fmt"
	"strings"
)

// Action is the operation a Cloudflare workflow job performs.
type Action string

const (
	ActionCreate       Action = "CREATE"
	ActionUpdate       Action = "UPDATE"
	ActionDelete       Action = "DELETE"
	ActionClone        Action = "CLONE"
	ActionCreateDomain Action = "CREATE-DOMAIN"
)

const (
	// WorkflowTag marks every job launched by the Cloudflare workflow.
	WorkflowTag = "CLOUDFLARE"
	// NoTicket stands in for a missing ticket number.
	NoTicket = "NO-TICKET"
)

// Actions returns all workflow actions. Each one has a matching AWX label.
func Actions() []Action {
	return []Action{ActionCreate, ActionUpdate, ActionDelete, ActionClone, ActionCreateDomain}
}

func ParseAction(s string) (Action, error) {
	a := Action(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Actions() {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q (expected one of %s)", s, actionList())
}

// JobTags builds the job_tags value a workflow job is launched with,
// e.g. "CLOUDFLARE,CREATE,ABC-123".
func JobTags(action, ticket string) (string, error) {
	a, err := ParseAction(action)
	if err != nil {
		return "", err
	}
	ticket = strings.ToUpper(strings.TrimSpace(ticket))
	if ticket == "" {
		ticket = NoTicket
	}
	if strings.Contains(ticket, ",") {
		return "", fmt.Errorf("ticket %q must not contain a comma", ticket)
	}
	return strings.Join([]string{WorkflowTag, string(a), ticket}, ","), nil
}

func actionList() string {
	names := make([]string, 0, len(Actions()))
	for _, a := range Actions() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}
