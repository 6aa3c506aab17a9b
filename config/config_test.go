package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/config"
	"github.com/katalvlaran/pathfind/heuristic"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "*", cfg.Server.CORSOrigin)
	assert.Equal(t, heuristic.KindEuclidean, cfg.DefaultHeuristic())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.FormatAuto, cfg.Log.Format)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathfind.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: "127.0.0.1:8080"
  request_timeout: 2s
search:
  default_heuristic: manhattan
log:
  format: json
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "*", cfg.Server.CORSOrigin, "unset keys keep defaults")
	assert.Equal(t, heuristic.KindManhattan, cfg.DefaultHeuristic())
	assert.Equal(t, config.FormatJSON, cfg.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PATHFIND_SERVER_ADDR", ":9999")
	t.Setenv("PATHFIND_LOG_LEVEL", "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"empty addr":   func(c *config.Config) { c.Server.Addr = "" },
		"zero timeout": func(c *config.Config) { c.Server.RequestTimeout = 0 },
		"bad level":    func(c *config.Config) { c.Log.Level = "loud" },
		"bad format":   func(c *config.Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := config.Default()
	cfg.Search.DefaultHeuristic = "random"
	assert.True(t, errors.Is(cfg.Validate(), heuristic.ErrInvalidHeuristic))
}
