package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telekom/cfctl/pkg/cfctl/output"
	"github.com/telekom/cfctl/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show cfctl version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.GetBuildInfo()

			rt, _ := getRuntime(cmd)
			writer := cmd.OutOrStdout()
			if rt != nil {
				writer = rt.Writer()
			}

			switch outputFormat {
			case "json", "yaml":
				return output.WriteObject(writer, output.Format(outputFormat), info)
			case "", "table":
				_, _ = fmt.Fprintf(writer, "cfctl %s %s %s\n", info, info.GoVersion, info.Platform)
				return nil
			default:
				return fmt.Errorf("unknown output format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format: json, yaml")

	return cmd
}
