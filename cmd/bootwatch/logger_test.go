package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootwatch/bootwatch/internal/config"
)

func TestInitLogger_LevelAndFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.File = filepath.Join(t.TempDir(), "bootwatch.log")

	var console bytes.Buffer
	logger, file, err := initLogger(cfg, &console)
	require.NoError(t, err)
	require.NotNil(t, file)
	defer file.Close()

	logger.Info("hidden at warn")
	logger.Warn("source unavailable")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, console.String(), "hidden at warn")
	assert.Contains(t, console.String(), "source unavailable")

	data, err := os.ReadFile(cfg.Logging.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"source unavailable"`)
}

func TestInitLogger_BadFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.File = filepath.Join(t.TempDir(), "missing", "dir", "x.log")

	_, file, err := initLogger(cfg, &bytes.Buffer{})
	require.Error(t, err)
	assert.Nil(t, file)
}

func TestInitLogger_NoFileConfigured(t *testing.T) {
	logger, file, err := initLogger(config.DefaultConfig(), &bytes.Buffer{})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.Nil(t, file)
}
