package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/telekom/cfctl/pkg/render"
)

func NewRenderCommand() *cobra.Command {
	var (
		templateFile string
		valuesFile   string
		sets         []string
		strict       bool
		validateYAML bool
		outFile      string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template with Sprig and naming functions",
		Example: `  cfctl render -f records.yaml.tmpl --values hosts.yaml
  cfctl render -f records.yaml.tmpl --set env=prod --set service=api`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			if templateFile == "" {
				return errors.New("template file is required (-f)")
			}
			values, err := render.LoadValues(valuesFile)
			if err != nil {
				return err
			}
			if err := render.ApplySet(values, sets); err != nil {
				return err
			}

			var opts []render.Option
			if strict {
				opts = append(opts, render.WithStrict())
			}
			out, err := render.NewRenderer(opts...).RenderFile(templateFile, values)
			if err != nil {
				return err
			}
			if validateYAML {
				if err := render.ValidateYAML(out); err != nil {
					return err
				}
			}
			rt.Logger().Debugw("Rendered template", "template", templateFile, "bytes", len(out))

			if outFile != "" {
				if err := os.WriteFile(outFile, out, 0o644); err != nil { //nolint:gosec // rendered output is not secret
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			_, err = rt.Writer().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&templateFile, "file", "f", "", "Template file")
	cmd.Flags().StringVar(&valuesFile, "values", "", "YAML values file")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set a value (key=value, dotted keys for nesting)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on missing keys")
	cmd.Flags().BoolVar(&validateYAML, "validate", false, "Check that the output is valid YAML")
	cmd.Flags().StringVar(&outFile, "out", "", "Write output to a file instead of stdout")
	_ = cmd.MarkFlagFilename("file")
	_ = cmd.MarkFlagFilename("values", "yaml", "yml")

	return cmd
}
