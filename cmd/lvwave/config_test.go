package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolve parses args against a fresh flag set and resolves the config.
func resolve(t *testing.T, args ...string) (config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("lvwave", pflag.ContinueOnError)
	registerFlags(fs)
	require.NoError(t, fs.Parse(args))
	v, err := newViper(fs)
	require.NoError(t, err)

	return loadConfig(v)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := resolve(t)
	require.NoError(t, err)

	assert.Equal(t, modelIMRPhenomD, cfg.Model)
	assert.Equal(t, 90.0, cfg.TotalMass)
	assert.Equal(t, 0.5, cfg.MassRatio)
	assert.Equal(t, 100.0, cfg.Distance)
	assert.Equal(t, 0.1, cfg.Phic)
	assert.Equal(t, 20.0, cfg.FMin)
	assert.Equal(t, 1500.0, cfg.FMax)
	assert.Equal(t, 0.25, cfg.DeltaF)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, formatTable, cfg.Format)
	assert.True(t, cfg.Polarize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvAndFlags(t *testing.T) {
	t.Setenv("LVWAVE_TOTAL_MASS", "60")
	t.Setenv("LVWAVE_LOG_LEVEL", "debug")
	t.Setenv("LVWAVE_MODEL", "TaylorF2")

	cfg, err := resolve(t)
	require.NoError(t, err)
	assert.Equal(t, 60.0, cfg.TotalMass)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, modelTaylorF2, cfg.Model)

	// An explicit flag beats the environment.
	cfg, err = resolve(t, "--total-mass", "30")
	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.TotalMass)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvwave.yaml")
	body := "total-mass: 45\nchi1: 0.3\nformat: csv\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := resolve(t, "--config", path, "--chi1", "0.7")
	require.NoError(t, err)
	assert.Equal(t, 45.0, cfg.TotalMass)
	assert.Equal(t, 0.7, cfg.Chi1)
	assert.Equal(t, formatCSV, cfg.Format)
	assert.Equal(t, "warn", cfg.LogLevel)

	_, err = resolve(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	base, err := resolve(t)
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*config)
		want   error
	}{
		{"model", func(c *config) { c.Model = "eob" }, errUnknownModel},
		{"format", func(c *config) { c.Format = "hdf5" }, errUnknownFormat},
		{"zero delta-f", func(c *config) { c.DeltaF = 0 }, errBadGrid},
		{"negative f-min", func(c *config) { c.FMin = -1 }, errBadGrid},
		{"zero f-min", func(c *config) { c.FMin = 0 }, errBadGrid},
		{"inverted band", func(c *config) { c.FMin = 2000 }, errBadGrid},
		{"workers", func(c *config) { c.Workers = 0 }, errBadWorkers},
		{"repeat", func(c *config) { c.Repeat = -3 }, errBadRepeat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			assert.ErrorIs(t, c.validate(), tc.want)
		})
	}
	assert.NoError(t, base.validate())
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console", "JSON"} {
		log, err := newLogger(os.Stderr, "warn", format)
		require.NoError(t, err, format)
		assert.False(t, log.Core().Enabled(-1), "debug disabled at warn")
	}

	_, err := newLogger(os.Stderr, "loud", "json")
	assert.Error(t, err)
	_, err = newLogger(os.Stderr, "info", "xml")
	assert.Error(t, err)
}
