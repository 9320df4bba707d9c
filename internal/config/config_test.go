package config

import (
	"runtime"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load(viper.New())

	assert.Equal(t, "problems", cfg.InputDir)
	assert.Equal(t, "8090", cfg.Port)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
	assert.Equal(t, int64(1<<20), cfg.MaxInputBytes)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, time.Hour, cfg.StatsWindow)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set(KeyInputDir, "/data/aoc")
	v.Set(KeyWorkers, 3)
	v.Set(KeyMaxInputBytes, 2048)
	v.Set(KeyLogFormat, "text")
	v.Set(KeyStatsWindow, "5m")

	cfg := Load(v)
	assert.Equal(t, "/data/aoc", cfg.InputDir)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, int64(2048), cfg.MaxInputBytes)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 5*time.Minute, cfg.StatsWindow)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "/env/inputs")
	t.Setenv("AOC_API_KEY", "secret")

	v := viper.New()
	v.SetEnvPrefix("AOC")
	v.AutomaticEnv()

	cfg := Load(v)
	assert.Equal(t, "/env/inputs", cfg.InputDir)
	assert.Equal(t, "secret", cfg.APIKey)
}

func TestLoad_NonPositiveFallsBack(t *testing.T) {
	v := viper.New()
	v.Set(KeyWorkers, -1)
	v.Set(KeyMaxInputBytes, 0)
	v.Set(KeyStatsWindow, "-1s")

	cfg := Load(v)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
	assert.Equal(t, int64(1<<20), cfg.MaxInputBytes)
	assert.Equal(t, time.Hour, cfg.StatsWindow)
}

func TestValidate(t *testing.T) {
	v := viper.New()
	v.Set(KeyLogFormat, "xml")
	assert.Error(t, Load(v).Validate())

	v = viper.New()
	v.Set(KeyLogLevel, "loud")
	assert.Error(t, Load(v).Validate())
}
