package naming

import (
	"fmt"
	"regexp"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

var (
	// invalidCharsRegex matches any character that is not a lowercase alphanumeric or dash
	invalidCharsRegex = regexp.MustCompile(`[^a-z0-9-]`)
	// multiDashRegex matches consecutive dashes
	multiDashRegex = regexp.MustCompile(`-+`)
)

// Pattern selects how the components of a name are assembled.
type Pattern string

const (
	// PatternLegacy produces {domain}-{env}{num}.
	PatternLegacy Pattern = "legacy"
	// PatternNew produces {env}{num}-{service}.
	PatternNew Pattern = "new"
	// PatternMixed produces {service}-{env}{num}.
	PatternMixed Pattern = "mixed"
	// PatternSpecial produces {name}-{service}.
	PatternSpecial Pattern = "special"
	// PatternDirect produces {name}.
	PatternDirect Pattern = "direct"

	// DefaultPattern is used when no pattern is given.
	DefaultPattern = PatternNew
)

var patternRules = map[Pattern]string{
	PatternLegacy:  "{domain}-{env}{num}",
	PatternNew:     "{env}{num}-{service}",
	PatternMixed:   "{service}-{env}{num}",
	PatternSpecial: "{name}-{service}",
	PatternDirect:  "{name}",
}

// Patterns returns all supported patterns in a stable order.
func Patterns() []Pattern {
	return []Pattern{PatternLegacy, PatternNew, PatternMixed, PatternSpecial, PatternDirect}
}

// Rule returns a short description of how the pattern assembles a name.
func (p Pattern) Rule() string {
	if rule, ok := patternRules[p]; ok {
		return rule
	}
	return patternRules[PatternSpecial]
}

// ParsePattern parses a pattern selector, ignoring case and surrounding whitespace.
// An empty selector yields DefaultPattern.
func ParsePattern(s string) (Pattern, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultPattern, true
	}
	p := Pattern(s)
	_, ok := patternRules[p]
	return p, ok
}

// SanitizeLabel converts a string to a DNS label fragment.
// The result:
//   - contains only lowercase alphanumeric characters and '-'
//   - has no consecutive, leading or trailing '-'
//   - is at most 63 characters long
//
// Unlike the Kubernetes helpers there is no fallback value; input that
// sanitizes to nothing yields the empty string.
func SanitizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Replace invalid characters with '-'
	s = invalidCharsRegex.ReplaceAllString(s, "-")

	s = multiDashRegex.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > validation.DNS1123LabelMaxLength {
		s = s[:validation.DNS1123LabelMaxLength]
		s = strings.TrimRight(s, "-")
	}

	return s
}

// ValidateLabel returns an error if s is not a valid DNS label.
func ValidateLabel(s string) error {
	if errs := validation.IsDNS1123Label(s); len(errs) > 0 {
		return fmt.Errorf("invalid label %q: %s", s, strings.Join(errs, "; "))
	}
	return nil
}

// Input holds the components a name is assembled from.
type Input struct {
	OriginalName string
	Domain       string
	Env          string
	Service      string
	Pattern      Pattern
}

// Normalize assembles a DNS label from in according to in.Pattern.
// An empty pattern means DefaultPattern; an unknown pattern behaves like PatternSpecial.
// A run of digits at the end of the original name is treated as an instance number
// and carried into the env-based patterns.
func Normalize(in Input) string {
	pattern := in.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	rawBase, num := splitTrailingNumber(in.OriginalName)
	base := SanitizeLabel(rawBase)
	svc := SanitizeLabel(in.Service)
	env := SanitizeLabel(in.Env)
	envNum := env + num

	var name string
	switch pattern {
	case PatternLegacy:
		parts := make([]string, 0, 2)
		if zone := leftmostLabel(in.Domain); zone != "" {
			parts = append(parts, zone)
		}
		if env != "" {
			parts = append(parts, envNum)
		}
		name = strings.Join(parts, "-")
	case PatternNew:
		name = withSuffix(envNum, svc)
	case PatternMixed:
		if svc != "" {
			name = svc + "-" + envNum
		} else {
			name = envNum
		}
	case PatternDirect:
		name = base
	default:
		name = withSuffix(base, svc)
	}

	return SanitizeLabel(name)
}

// NormalizeName is Normalize with positional arguments.
func NormalizeName(originalName, domain, env, service, pattern string) string {
	return Normalize(Input{
		OriginalName: originalName,
		Domain:       domain,
		Env:          env,
		Service:      service,
		Pattern:      Pattern(pattern),
	})
}

// splitTrailingNumber splits s into the text before a trailing run of ASCII digits and the run itself.
func splitTrailingNumber(s string) (base, num string) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return s[:i], s[i:]
}

// leftmostLabel returns the text before the first dot of the trimmed domain.
func leftmostLabel(domain string) string {
	label, _, _ := strings.Cut(strings.TrimSpace(domain), ".")
	return label
}

func withSuffix(s, suffix string) string {
	if suffix == "" {
		return s
	}
	return s + "-" + suffix
}
