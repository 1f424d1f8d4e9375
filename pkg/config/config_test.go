package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaultLogConfigApplyDefaults(t *testing.T) {
	var c FaultLogConfig
	c.ApplyDefaults()
	assert.Equal(t, "./logs", c.Dir)
	assert.Equal(t, "faults", c.Filename)
	assert.Equal(t, 7, c.MaxAgeDays)

	c = FaultLogConfig{Dir: "/var/log/fleet", Filename: "errors", MaxAgeDays: 30}
	c.ApplyDefaults()
	assert.Equal(t, "/var/log/fleet", c.Dir)
	assert.Equal(t, "errors", c.Filename)
	assert.Equal(t, 30, c.MaxAgeDays)
}

func TestAlertConfigApplyDefaults(t *testing.T) {
	var c AlertConfig
	c.ApplyDefaults()
	assert.Equal(t, "high", c.MinSeverity)
	assert.Equal(t, Duration(300), c.DedupWindow)
}

func TestDurationIsSeconds(t *testing.T) {
	d := Duration(90)
	assert.Equal(t, 90*time.Second, d.Duration())
	assert.Equal(t, int64(90), d.Seconds())
}

func TestGetEnvDefaultsToDev(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.Equal(t, "dev", GetEnv())

	t.Setenv("APP_ENV", "prod")
	assert.Equal(t, "prod", GetEnv())
}

func TestVerboseEnabled(t *testing.T) {
	t.Setenv("FAULT_VERBOSE", "")
	assert.False(t, FaultConfig{}.VerboseEnabled())
	assert.True(t, FaultConfig{Verbose: true}.VerboseEnabled())

	t.Setenv("FAULT_VERBOSE", "true")
	assert.True(t, FaultConfig{}.VerboseEnabled())

	t.Setenv("FAULT_VERBOSE", "0")
	assert.False(t, FaultConfig{Verbose: true}.VerboseEnabled())

	// Unparseable values fall back to the config file.
	t.Setenv("FAULT_VERBOSE", "banana")
	assert.True(t, FaultConfig{Verbose: true}.VerboseEnabled())
}

func TestGetSecretOrEnv(t *testing.T) {
	t.Setenv("FLEET_TOKEN", "")
	t.Setenv("FLEET_TOKEN_FILE", "")
	assert.Equal(t, "fallback", GetSecretOrEnv("FLEET_TOKEN", "fallback"))

	t.Setenv("FLEET_TOKEN", "from-env")
	assert.Equal(t, "from-env", GetSecretOrEnv("FLEET_TOKEN", "fallback"))

	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0o600))
	t.Setenv("FLEET_TOKEN_FILE", path)
	assert.Equal(t, "from-file", GetSecretOrEnv("FLEET_TOKEN", "fallback"))
}

func TestMustGetSecretPanicsWhenAbsent(t *testing.T) {
	t.Setenv("FLEET_MISSING", "")
	t.Setenv("FLEET_MISSING_FILE", "")
	assert.Panics(t, func() { MustGetSecret("FLEET_MISSING") })
}
