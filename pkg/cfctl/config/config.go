package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/telekom/cfctl/pkg/naming"
)

const (
	VersionV1 = "v1"

	DefaultServer        = "http://localhost:8080"
	DefaultUsername      = "admin"
	DefaultPasswordEnv   = "AWX_PASSWORD"
	DefaultPassword      = "admin"
	DefaultTimeout       = "30s"
	DefaultJobTemplateID = 21
)

type Config struct {
	Version  string   `yaml:"version"`
	AWX      AWX      `yaml:"awx,omitempty"`
	Naming   Naming   `yaml:"naming,omitempty"`
	Settings Settings `yaml:"settings,omitempty"`
}

type AWX struct {
	Server                string  `yaml:"server,omitempty"`
	Username              string  `yaml:"username,omitempty"`
	PasswordEnv           string  `yaml:"password-env,omitempty"`
	InsecureSkipTLSVerify bool    `yaml:"insecure-skip-tls-verify,omitempty"`
	Timeout               string  `yaml:"timeout,omitempty"`
	RateLimit             float64 `yaml:"rate-limit,omitempty"`
	JobTemplateID         int     `yaml:"job-template-id,omitempty"`
}

// Naming holds the defaults for the normalize command.
type Naming struct {
	Domain  string `yaml:"domain,omitempty"`
	Env     string `yaml:"env,omitempty"`
	Service string `yaml:"service,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
}

type Settings struct {
	OutputFormat string `yaml:"output-format,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Version: VersionV1,
		AWX: AWX{
			Server:        DefaultServer,
			Username:      DefaultUsername,
			PasswordEnv:   DefaultPasswordEnv,
			Timeout:       DefaultTimeout,
			JobTemplateID: DefaultJobTemplateID,
		},
		Naming: Naming{
			Pattern: string(naming.DefaultPattern),
		},
		Settings: Settings{
			OutputFormat: "table",
		},
	}
}

// Load reads the config at path on top of the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Version == "" {
		cfg.Version = VersionV1
	}
	return &cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults when no file exists at path.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		def := DefaultConfig()
		return &def, nil
	}
	return cfg, err
}

func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if cfg.Version == "" {
		cfg.Version = VersionV1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, content, 0o600)
}

// Password returns the AWX password from the environment variable named by
// PasswordEnv, or DefaultPassword when it is unset.
func (a AWX) Password() string {
	env := a.PasswordEnv
	if env == "" {
		env = DefaultPasswordEnv
	}
	if v, ok := os.LookupEnv(env); ok {
		return v
	}
	return DefaultPassword
}

func (a AWX) TimeoutDuration() (time.Duration, error) {
	if a.Timeout == "" {
		return time.ParseDuration(DefaultTimeout)
	}
	d, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid awx timeout %q: %w", a.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("awx timeout must be positive, got %s", a.Timeout)
	}
	return d, nil
}

func (c *Config) Validate() error {
	if c.Version == "" {
		return errors.New("config version missing")
	}
	if strings.TrimSpace(c.AWX.Server) == "" {
		return errors.New("awx server is required")
	}
	if u, err := url.Parse(c.AWX.Server); err != nil || u.Host == "" {
		return fmt.Errorf("awx server %q is not a valid URL", c.AWX.Server)
	}
	if _, err := c.AWX.TimeoutDuration(); err != nil {
		return err
	}
	if c.AWX.RateLimit < 0 {
		return fmt.Errorf("awx rate-limit must not be negative, got %v", c.AWX.RateLimit)
	}
	if c.AWX.JobTemplateID < 0 {
		return fmt.Errorf("awx job-template-id must not be negative, got %d", c.AWX.JobTemplateID)
	}
	if _, ok := naming.ParsePattern(c.Naming.Pattern); !ok {
		return fmt.Errorf("unknown naming pattern %q", c.Naming.Pattern)
	}
	switch c.Settings.OutputFormat {
	case "", "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", c.Settings.OutputFormat)
	}
	return nil
}
