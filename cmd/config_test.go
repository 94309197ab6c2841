package cmd

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "catchup", configBaseName)
	assert.Equal(t, "catchup.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "CATCHUP", envPrefix)
	assert.Equal(t, "paths.workspace", workspaceConfigKey)
	assert.Equal(t, "test.suffix", testSuffixKey)
	assert.Equal(t, "_test.cpp", defaultTestSuffix)
	assert.Equal(t, "submit.auto", submitAutoKey)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestTimeoutFromConfig(t *testing.T) {
	const key = "test_only.timeout"

	assert.Equal(t, 30*time.Second, timeoutFromConfig(key, 30*time.Second), "unset key falls back")

	viper.Set(key, 5)
	t.Cleanup(func() { viper.Set(key, nil) })
	assert.Equal(t, 5*time.Second, timeoutFromConfig(key, 30*time.Second))

	viper.Set(key, -1)
	assert.Equal(t, 30*time.Second, timeoutFromConfig(key, 30*time.Second), "non-positive falls back")
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"Info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigCmd_PrintsMergedSettings(t *testing.T) {
	cmd := newConfigCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "test:")
	assert.Contains(t, output, "suffix: _test.cpp")
	assert.Contains(t, output, "log:")
}
