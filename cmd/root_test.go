package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logFlags(t *testing.T, set map[string]string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "", "")
	fs.String("log-format", "", "")
	for k, v := range set {
		require.NoError(t, fs.Set(k, v))
	}
	return fs
}

func TestLoadConfig_FlagsFixBadEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NAVTREE_LOG_LEVEL", "loud")
	t.Setenv("NAVTREE_LOG_FORMAT", "yaml")

	_, err := loadConfig("", logFlags(t, nil))
	assert.ErrorContains(t, err, "log_level")

	cfg, err := loadConfig("", logFlags(t, map[string]string{"log-level": "debug", "log-format": "json"}))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_FlagsValidated(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := loadConfig("", logFlags(t, map[string]string{"log-format": "xml"}))
	assert.ErrorContains(t, err, "log_format")
}
