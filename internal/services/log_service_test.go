package services

import (
	"InfoCity/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogService_LevelAndFormat(t *testing.T) {
	cfg := &config.Configuration{Log: config.LogConfig{Level: "DEBUG", Format: "json", Output: "stdout"}}

	logService, err := NewLogService(cfg)
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, logService.Log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logService.Log.Formatter)
}

func TestNewLogService_FileOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Configuration{Log: config.LogConfig{Level: "info", Format: "text", Output: "file", LogPath: dir + "/"}}

	logService, err := NewLogService(cfg)
	require.NoError(t, err)
	logService.Log.Info("town registered")

	name := "infocity-" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Contains(t, string(data), "town registered")
}

func TestNewLogService_FileOutputWithoutPath(t *testing.T) {
	cfg := &config.Configuration{Log: config.LogConfig{Output: "file"}}

	_, err := NewLogService(cfg)
	assert.Error(t, err)
}
