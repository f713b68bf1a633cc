package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeyya18/leakcalc/internal/config"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	cfg := config.Default()
	cfg.Logging = config.LoggingConfig{Level: "info", Format: "text"}
	return cfg
}

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, "info", target.Logging.Level)
	assert.Equal(t, "text", target.Logging.Format)
	assert.Equal(t, config.DefaultInputs(), target.Calculation.Defaults)
}

func TestShallowMergeYAML_SectionIsReplacedWhole(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
calculation:
  precision: rounded
  defaults:
    diameter: 0.01
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "rounded", target.Calculation.Precision)
	assert.InDelta(t, 0.01, target.Calculation.Defaults.Diameter, 1e-15)
	// Shallow merge: keys absent from the overlay section are zeroed.
	assert.Zero(t, target.Calculation.Defaults.Duration)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
plugins:
  aws: {}
version: "1.2.0"
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "1.2.0", target.Version)
	assert.Equal(t, "table", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "x.yaml"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading overlay file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		overlay := writeOverlay(t, "output: [unclosed\n")
		err := config.ShallowMergeYAML(newDefaultTarget(), overlay)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("top level is a list", func(t *testing.T) {
		overlay := writeOverlay(t, "- output\n- logging\n")
		err := config.ShallowMergeYAML(newDefaultTarget(), overlay)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a mapping")
	})

	t.Run("wrong section type", func(t *testing.T) {
		overlay := writeOverlay(t, "logging: [1, 2]\n")
		err := config.ShallowMergeYAML(newDefaultTarget(), overlay)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "logging"`)
	})
}
