package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/telekom/cfctl/pkg/cfctl/config"
	"github.com/telekom/cfctl/pkg/cfctl/output"
)

type Config struct {
	ConfigPath   string
	OutputWriter io.Writer
	// ErrWriter receives verbose log output. Defaults to os.Stderr.
	ErrWriter io.Writer
}

type runtimeState struct {
	configPath       string
	cfg              *config.Config
	outputFormat     string
	serverOverride   string
	usernameOverride string
	verbose          bool
	writer           io.Writer
	errWriter        io.Writer
	log              *zap.SugaredLogger
}

type runtimeKey struct{}

func DefaultConfig() Config {
	return Config{
		ConfigPath:   config.DefaultConfigPath(),
		OutputWriter: os.Stdout,
		ErrWriter:    os.Stderr,
	}
}

func NewRootCommand(cfg Config) *cobra.Command {
	rt := &runtimeState{
		configPath: cfg.ConfigPath,
		writer:     cfg.OutputWriter,
		errWriter:  cfg.ErrWriter,
		log:        zap.NewNop().Sugar(),
	}

	root := &cobra.Command{
		Use:          "cfctl",
		Short:        "Cloudflare DNS naming and AWX workflow helper",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if rt.writer == nil {
				rt.writer = os.Stdout
			}
			if rt.errWriter == nil {
				rt.errWriter = os.Stderr
			}
			if rt.configPath == "" {
				rt.configPath = config.DefaultConfigPath()
			}
			if rt.outputFormat == "" {
				rt.outputFormat = os.Getenv("CFCTL_OUTPUT")
			}
			if rt.serverOverride == "" {
				rt.serverOverride = os.Getenv("CFCTL_SERVER")
			}
			if rt.usernameOverride == "" {
				rt.usernameOverride = os.Getenv("CFCTL_USERNAME")
			}
			if !rt.verbose {
				rt.verbose = strings.EqualFold(os.Getenv("CFCTL_VERBOSE"), "true")
			}
			rt.log = setupLogger(rt.verbose, rt.errWriter)

			if cmd.Name() == "init" && cmd.Parent() != nil && cmd.Parent().Name() == "config" {
				return nil
			}
			if cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}
			return rt.EnsureConfigLoaded()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = rt.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&rt.configPath, "config", rt.configPath, "Path to config file")
	root.PersistentFlags().StringVarP(&rt.outputFormat, "output", "o", "", "Output format: table, json, yaml")
	root.PersistentFlags().StringVar(&rt.serverOverride, "server", "", "AWX server URL override")
	root.PersistentFlags().StringVar(&rt.usernameOverride, "username", "", "AWX username override")
	root.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	root.SetContext(context.WithValue(context.Background(), runtimeKey{}, rt))

	root.AddCommand(
		NewSanitizeCommand(),
		NewNormalizeCommand(),
		NewValidateCommand(),
		NewPatternsCommand(),
		NewRecordCommand(),
		NewRenderCommand(),
		NewCleanupCommand(),
		NewAWXCommand(),
		NewConfigCommand(),
		NewCompletionCommand(),
		NewVersionCommand(),
	)

	return root
}

func getRuntime(cmd *cobra.Command) (*runtimeState, error) {
	rt, ok := cmd.Context().Value(runtimeKey{}).(*runtimeState)
	if !ok || rt == nil {
		return nil, errors.New("runtime not initialized")
	}
	return rt, nil
}

// EnsureConfigLoaded loads and validates the config file. A missing file yields the defaults.
func (rt *runtimeState) EnsureConfigLoaded() error {
	if rt.cfg != nil {
		return nil
	}
	cfg, err := config.LoadOrDefault(rt.configPathValue())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	rt.cfg = cfg
	rt.log.Debugw("Loaded config", "path", rt.configPathValue(), "server", cfg.AWX.Server)
	return nil
}

func (rt *runtimeState) OutputFormat() (output.Format, error) {
	if rt.outputFormat != "" {
		return output.ParseFormat(rt.outputFormat)
	}
	if rt.cfg != nil && rt.cfg.Settings.OutputFormat != "" {
		return output.ParseFormat(rt.cfg.Settings.OutputFormat)
	}
	return output.FormatTable, nil
}

func (rt *runtimeState) Writer() io.Writer {
	if rt.writer != nil {
		return rt.writer
	}
	return os.Stdout
}

func (rt *runtimeState) Logger() *zap.SugaredLogger {
	if rt.log != nil {
		return rt.log
	}
	return zap.NewNop().Sugar()
}

func (rt *runtimeState) resolveServer() string {
	if rt.serverOverride != "" {
		return rt.serverOverride
	}
	if rt.cfg != nil {
		return rt.cfg.AWX.Server
	}
	return ""
}

func (rt *runtimeState) resolveUsername() string {
	if rt.usernameOverride != "" {
		return rt.usernameOverride
	}
	if rt.cfg != nil {
		return rt.cfg.AWX.Username
	}
	return ""
}

func (rt *runtimeState) configPathValue() string {
	if rt.configPath == "" {
		return config.DefaultConfigPath()
	}
	return rt.configPath
}

// writeResult prints obj as JSON/YAML, or calls table for the table format.
func (rt *runtimeState) writeResult(obj any, table func(io.Writer)) error {
	format, err := rt.OutputFormat()
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		table(rt.Writer())
		return nil
	}
	return output.WriteObject(rt.Writer(), format, obj)
}
