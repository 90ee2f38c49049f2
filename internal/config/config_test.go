package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mathtext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "unicode", cfg.Engine.Strategy)
	assert.True(t, cfg.Engine.Heuristics)
	assert.Equal(t, 4, cfg.Engine.PoolSize)
	assert.Equal(t, 1024, cfg.Engine.WarnCapacity)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
engine:
  strategy: mathml
  heuristics: false
  pool_size: 2
server:
  port: 9090
log:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mathml", cfg.Engine.Strategy)
	assert.False(t, cfg.Engine.Heuristics)
	assert.Equal(t, 2, cfg.Engine.PoolSize)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	// 未出现的键保留默认值
	assert.Equal(t, "data/quizzes.yaml", cfg.Quiz.Bank)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "engine:\n  strategy: unicode\n")
	t.Setenv("MATHTEXT_ENGINE_STRATEGY", "mathml")
	t.Setenv("MATHTEXT_SERVER_PORT", "7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mathml", cfg.Engine.Strategy)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	tests := []struct {
		data string
		want string
	}{
		{"engine:\n  strategy: ascii\n", "engine.strategy"},
		{"engine:\n  pool_size: 0\n", "pool_size"},
		{"log:\n  format: xml\n", "log.format"},
	}
	for _, tt := range tests {
		cfg, err := Load(writeConfig(t, tt.data))
		require.NoError(t, err)
		assert.ErrorContains(t, cfg.Validate(), tt.want)
	}
}

// TestLoadDefersValidation 文件中的非法值可以在校验前被覆盖
func TestLoadDefersValidation(t *testing.T) {
	cfg, err := Load(writeConfig(t, "engine:\n  strategy: ascii\n"))
	require.NoError(t, err)
	assert.Equal(t, "ascii", cfg.Engine.Strategy)

	cfg.Engine.Strategy = "unicode"
	assert.NoError(t, cfg.Validate())
}
