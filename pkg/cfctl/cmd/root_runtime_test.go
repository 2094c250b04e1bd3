package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telekom/cfctl/pkg/cfctl/config"
	"github.com/telekom/cfctl/pkg/cfctl/output"
)

func TestRuntimeStateOutputFormat(t *testing.T) {
	rt := &runtimeState{outputFormat: "json"}
	format, err := rt.OutputFormat()
	require.NoError(t, err)
	require.Equal(t, output.FormatJSON, format)

	rt = &runtimeState{cfg: &config.Config{Settings: config.Settings{OutputFormat: "yaml"}}}
	format, err = rt.OutputFormat()
	require.NoError(t, err)
	require.Equal(t, output.FormatYAML, format)

	rt = &runtimeState{}
	format, err = rt.OutputFormat()
	require.NoError(t, err)
	require.Equal(t, output.FormatTable, format)

	rt = &runtimeState{outputFormat: "wide"}
	_, err = rt.OutputFormat()
	require.Error(t, err)
}

func TestRuntimeStateResolveServerAndUsername(t *testing.T) {
	cfg := config.DefaultConfig()
	rt := &runtimeState{cfg: &cfg}
	assert.Equal(t, config.DefaultServer, rt.resolveServer())
	assert.Equal(t, config.DefaultUsername, rt.resolveUsername())

	rt.serverOverride = "https://awx.example.com"
	rt.usernameOverride = "operator"
	assert.Equal(t, "https://awx.example.com", rt.resolveServer())
	assert.Equal(t, "operator", rt.resolveUsername())

	assert.Empty(t, (&runtimeState{}).resolveServer())
}

func TestEnsureConfigLoaded(t *testing.T) {
	path := writeConfig(t, func(c *config.Config) { c.Naming.Env = "stage" })

	rt := &runtimeState{configPath: path}
	require.NoError(t, rt.EnsureConfigLoaded())
	require.NotNil(t, rt.cfg)
	assert.Equal(t, "stage", rt.cfg.Naming.Env)

	rt = &runtimeState{configPath: configPathForTest(t)}
	require.NoError(t, rt.EnsureConfigLoaded())
	assert.Equal(t, config.DefaultServer, rt.cfg.AWX.Server)
}

func TestBuildClientRejectsInvalidServer(t *testing.T) {
	cfg := config.DefaultConfig()
	rt := &runtimeState{cfg: &cfg, serverOverride: "awx.example.com"}
	_, err := buildClient(rt)
	require.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	setupLogger(false, &buf).Infow("hidden")
	assert.Empty(t, buf.String())

	setupLogger(true, &buf).Debugw("visible", "key", "value")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), `"key": "value"`)
}
