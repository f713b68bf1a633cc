package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeyya18/leakcalc/internal/cli"
	"github.com/sergeyya18/leakcalc/internal/config"
	"github.com/sergeyya18/leakcalc/pkg/version"
)

func TestRun(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	require.NoError(t, run(context.Background(), []string{"config", "validate"}))

	err := run(context.Background(), []string{"no-such-command"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leakcalc:")
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "leakcalc", root.Use)

		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs([]string{"--version"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), version.GetVersion())
	})
}
