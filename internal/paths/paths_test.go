package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/from/env")
		dir, err := ResolveConfigDir("/from/flag")
		require.NoError(t, err)
		assert.Equal(t, "/from/flag", dir)
	})

	t.Run("env when no flag", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/from/env")
		dir, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/from/env", dir)
	})

	t.Run("cwd default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		dir, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfigDirName, filepath.Base(dir))
	})
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Run("flag wins over config and env", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/from/env")
		dir, err := ResolveDataDir("/from/flag", "/from/config")
		require.NoError(t, err)
		assert.Equal(t, "/from/flag", dir)
	})

	t.Run("config wins over env", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/from/env")
		dir, err := ResolveDataDir("", "/from/config")
		require.NoError(t, err)
		assert.Equal(t, "/from/config", dir)
	})

	t.Run("env when no flag or config", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/from/env")
		dir, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/from/env", dir)
	})

	t.Run("cwd default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		dir, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultDataDirName, filepath.Base(dir))
	})
}
