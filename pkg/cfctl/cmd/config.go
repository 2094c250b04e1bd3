package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/telekom/cfctl/pkg/cfctl/config"
	"github.com/telekom/cfctl/pkg/cfctl/output"
	"github.com/telekom/cfctl/pkg/naming"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cfctl configuration",
	}

	cmd.AddCommand(
		newConfigInitCommand(),
		newConfigViewCommand(),
		newConfigPathCommand(),
	)

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		server   string
		username string
		domain   string
		env      string
		service  string
		pattern  string
		insecure bool
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a cfctl config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			path := rt.configPathValue()
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config already exists: %s", path)
				}
			}

			cfg := config.DefaultConfig()
			if server != "" {
				cfg.AWX.Server = server
			}
			if username != "" {
				cfg.AWX.Username = username
			}
			cfg.AWX.InsecureSkipTLSVerify = insecure
			cfg.Naming = config.Naming{Domain: domain, Env: env, Service: service, Pattern: pattern}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(path, &cfg); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(rt.Writer(), "Initialized config at %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "awx-server", "", "AWX server URL")
	cmd.Flags().StringVar(&username, "awx-username", "", "AWX username")
	cmd.Flags().StringVar(&domain, "domain", "", "Default domain for normalize")
	cmd.Flags().StringVar(&env, "env", "", "Default environment for normalize")
	cmd.Flags().StringVar(&service, "service", "", "Default service for normalize")
	cmd.Flags().StringVar(&pattern, "pattern", string(naming.DefaultPattern), "Default naming pattern")
	cmd.Flags().BoolVar(&insecure, "insecure-skip-tls-verify", false, "Skip TLS verification for AWX")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config")

	return cmd
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			format, err := rt.OutputFormat()
			if err != nil {
				return err
			}
			if format == output.FormatTable {
				format = output.FormatYAML
			}
			return output.WriteObject(rt.Writer(), format, rt.cfg)
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(rt.Writer(), rt.configPathValue())
			return nil
		},
	}
}
