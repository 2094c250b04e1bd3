package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/telekom/cfctl/pkg/cfctl/output"
	"github.com/telekom/cfctl/pkg/naming"
)

type sanitizedValue struct {
	Input string `json:"input" yaml:"input"`
	Label string `json:"label" yaml:"label"`
}

type normalizedName struct {
	Name    string         `json:"name" yaml:"name"`
	Pattern naming.Pattern `json:"pattern" yaml:"pattern"`
	Label   string         `json:"label" yaml:"label"`
}

type labelValidation struct {
	Label string `json:"label" yaml:"label"`
	Valid bool   `json:"valid" yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

type recordResult struct {
	Label string `json:"label" yaml:"label"`
	Zone  string `json:"zone" yaml:"zone"`
	FQDN  string `json:"fqdn" yaml:"fqdn"`
}

func NewSanitizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize [VALUE...]",
		Short: "Convert values to DNS labels",
		Long:  "Convert values to DNS labels. Without arguments one value per line is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			values := args
			if len(values) == 0 {
				values, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}
			results := make([]sanitizedValue, 0, len(values))
			for _, v := range values {
				results = append(results, sanitizedValue{Input: v, Label: naming.SanitizeLabel(v)})
			}
			return rt.writeResult(results, func(w io.Writer) {
				for _, r := range results {
					_, _ = fmt.Fprintln(w, r.Label)
				}
			})
		},
	}
}

func NewNormalizeCommand() *cobra.Command {
	var domain, env, service, pattern string

	cmd := &cobra.Command{
		Use:   "normalize NAME...",
		Short: "Build record labels from names using a naming pattern",
		Example: `  cfctl normalize host42 --domain example.com --env prod --service api
  cfctl normalize host3 --env stage --pattern legacy`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			defaults := rt.cfg.Naming
			if !cmd.Flags().Changed("domain") {
				domain = defaults.Domain
			}
			if !cmd.Flags().Changed("env") {
				env = defaults.Env
			}
			if !cmd.Flags().Changed("service") {
				service = defaults.Service
			}
			if !cmd.Flags().Changed("pattern") {
				pattern = defaults.Pattern
			}

			p, ok := naming.ParsePattern(pattern)
			if !ok {
				rt.Logger().Warnw("Unknown naming pattern, using special", "pattern", pattern)
				p = naming.Pattern(pattern)
			}

			results := make([]normalizedName, 0, len(args))
			for _, name := range args {
				label := naming.Normalize(naming.Input{
					OriginalName: name,
					Domain:       domain,
					Env:          env,
					Service:      service,
					Pattern:      p,
				})
				rt.Logger().Debugw("Normalized name", "name", name, "pattern", p, "label", label)
				results = append(results, normalizedName{Name: name, Pattern: p, Label: label})
			}
			return rt.writeResult(results, func(w io.Writer) {
				for _, r := range results {
					_, _ = fmt.Fprintln(w, r.Label)
				}
			})
		},
	}

	cmd.Flags().StringVar(&domain, "domain", "", "Domain name (defaults to naming.domain from config)")
	cmd.Flags().StringVar(&env, "env", "", "Environment (defaults to naming.env from config)")
	cmd.Flags().StringVar(&service, "service", "", "Service (defaults to naming.service from config)")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Naming pattern: legacy, new, mixed, special, direct")
	_ = cmd.RegisterFlagCompletionFunc("pattern", completePatterns)

	return cmd
}

func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate LABEL...",
		Short: "Check that labels are valid DNS labels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			results := make([]labelValidation, 0, len(args))
			invalid := 0
			for _, label := range args {
				res := labelValidation{Label: label, Valid: true}
				if err := naming.ValidateLabel(label); err != nil {
					res.Valid = false
					res.Error = err.Error()
					invalid++
				}
				results = append(results, res)
			}
			if err := rt.writeResult(results, func(w io.Writer) {
				for _, r := range results {
					if r.Valid {
						_, _ = fmt.Fprintf(w, "✓ %s\n", r.Label)
					} else {
						_, _ = fmt.Fprintf(w, "✗ %s: %s\n", r.Label, r.Error)
					}
				}
			}); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d labels are invalid", invalid, len(args))
			}
			return nil
		},
	}
}

func NewPatternsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List naming patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			patterns := output.Patterns()
			return rt.writeResult(patterns, func(w io.Writer) {
				output.WritePatternTable(w, patterns)
			})
		},
	}
}

func NewRecordCommand() *cobra.Command {
	var zone string

	cmd := &cobra.Command{
		Use:   "record [LABEL]",
		Short: "Compose the fully-qualified record name for a label",
		Long:  "Compose the fully-qualified record name for a label. An empty label or @ names the zone apex.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			if zone == "" {
				zone = rt.cfg.Naming.Domain
			}
			if zone == "" {
				return errors.New("zone is required (--zone or naming.domain in config)")
			}
			label := ""
			if len(args) == 1 {
				label = args[0]
			}
			fqdn, err := naming.RecordName(label, zone)
			if err != nil {
				return err
			}
			res := recordResult{Label: label, Zone: zone, FQDN: fqdn}
			return rt.writeResult(res, func(w io.Writer) {
				_, _ = fmt.Fprintln(w, res.FQDN)
			})
		},
	}

	cmd.Flags().StringVar(&zone, "zone", "", "DNS zone (defaults to naming.domain from config)")
	return cmd
}

func completePatterns(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(naming.Patterns()))
	for _, p := range naming.Patterns() {
		names = append(names, string(p)+"\t"+p.Rule())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
