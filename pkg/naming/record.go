package naming

import (
	"errors"
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// ApexLabel denotes the zone apex in record names.
const ApexLabel = "@"

// RecordName joins a record label and its zone into a fully-qualified domain name.
// An empty label or ApexLabel addresses the zone apex.
func RecordName(label, zone string) (string, error) {
	zone = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(zone)), ".")
	if zone == "" {
		return "", errors.New("zone is required")
	}
	if _, ok := dns.IsDomainName(zone); !ok {
		return "", fmt.Errorf("invalid zone %q", zone)
	}

	label = strings.ToLower(strings.TrimSpace(label))
	name := zone
	if label != "" && label != ApexLabel {
		name = label + "." + zone
	}
	if _, ok := dns.IsDomainName(name); !ok {
		return "", fmt.Errorf("invalid record name %q", name)
	}
	return dns.Fqdn(name), nil
}
