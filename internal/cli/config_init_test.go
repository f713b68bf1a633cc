package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeyya18/leakcalc/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)

	out := mustRunCLI(t, "config", "init")
	assert.Contains(t, out, "Configuration initialized successfully")

	configPath := filepath.Join(home, "config.yaml")
	assert.Contains(t, out, configPath)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.CurrentVersion, cfg.Version)
	assert.Equal(t, config.DefaultInputs(), cfg.Calculation.Defaults)
}

func TestConfigInit_ExistingFile(t *testing.T) {
	home := setupCLITest(t)
	configPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  default_format: json\n"), 0o600))

	_, _, err := runCLI(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	config.ResetGlobalConfigForTest()
	mustRunCLI(t, "config", "init", "--force")

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat, "--force writes fresh defaults")
}

func TestConfigShow(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvOutputFormat, "prometheus")

	out := mustRunCLI(t, "config", "show")
	assert.Contains(t, out, "default_format: prometheus")
	assert.Contains(t, out, "diameter: 0.005")
	assert.Contains(t, out, "precision: raw")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "no file uses valid defaults"},
		{name: "valid file", content: "version: \"1.2.0\"\noutput:\n  default_format: json\n"},
		{name: "unsupported version", content: "version: \"2.0.0\"\n", wantErr: "not supported"},
		{name: "unknown format", content: "output:\n  default_format: xml\n", wantErr: "default_format"},
		{name: "malformed yaml", content: "output: [\n", wantErr: "parsing config file"},
		{name: "non-finite default", content: "calculation:\n  defaults:\n    pressure: .nan\n", wantErr: "pressure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupCLITest(t)
			if tt.content != "" {
				require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(tt.content), 0o600))
			}

			out, _, err := runCLI(t, "config", "validate")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "Configuration is valid")
		})
	}
}

func TestConfigValidate_Verbose(t *testing.T) {
	setupCLITest(t)

	out := mustRunCLI(t, "config", "validate", "--verbose")
	assert.Contains(t, out, "Output format: table")
	assert.Contains(t, out, "Precision: raw")
	assert.Contains(t, out, "pressure: 5 kgf/cm²")
	assert.Contains(t, out, "Critical regime above: 0.8370 kgf/cm² gauge")
}
