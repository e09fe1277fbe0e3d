package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfiguration = `
persistence:
  unit: infocity
  units:
    infocity:
      driver: sqlite
      dsn: ${INFOCITY_TEST_DIR}/infocity.db
      autoMigrate: true
      tablePrefix: ic_
    infocity-pg:
      driver: postgres
      dsn: host=localhost user=${INFOCITY_TEST_USER} dbname=infocity sslmode=disable
      logLevel: info
log:
  level: debug
  format: json
janitor:
  enabled: true
  schedule: "@every 1h"
  retention: 48h
`

func TestLoadConfiguration(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INFOCITY_TEST_DIR", dir)
	t.Setenv("INFOCITY_TEST_USER", "ludovic")
	path := filepath.Join(dir, "infocity.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfiguration), 0o600))

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)

	unit, err := cfg.Unit(cfg.Persistence.Unit)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", unit.Driver)
	assert.Equal(t, filepath.Join(dir, "infocity.db"), unit.DSN)
	assert.Equal(t, "ic_", unit.TablePrefix)
	assert.True(t, unit.AutoMigrate)
	assert.Equal(t, "warn", unit.LogLevel)
	assert.Equal(t, 200*time.Millisecond, unit.SlowThreshold)

	pg, err := cfg.Unit("infocity-pg")
	require.NoError(t, err)
	assert.Contains(t, pg.DSN, "user=ludovic")
	assert.Equal(t, "info", pg.LogLevel)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
	assert.Equal(t, 48*time.Hour, cfg.Janitor.Retention)
	assert.Equal(t, "@every 1h", cfg.Janitor.Schedule)
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseConfiguration_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown driver": `
persistence:
  unit: jpa
  units:
    jpa: {driver: oracle, dsn: x}
`,
		"undefined unit": `
persistence:
  unit: other
  units:
    jpa: {driver: sqlite, dsn: ":memory:"}
`,
		"no units": `
persistence:
  unit: jpa
`,
		"file output without path": `
persistence:
  unit: jpa
  units:
    jpa: {driver: sqlite, dsn: ":memory:"}
log:
  output: file
`,
		"janitor without schedule": `
persistence:
  unit: jpa
  units:
    jpa: {driver: sqlite, dsn: ":memory:"}
janitor:
  enabled: true
`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfiguration([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestConfiguration_UnknownUnit(t *testing.T) {
	cfg, err := ParseConfiguration([]byte(`
persistence:
  unit: jpa
  units:
    jpa: {driver: sqlite, dsn: ":memory:"}
`))
	require.NoError(t, err)

	_, err = cfg.Unit("nope")
	assert.Error(t, err)
	assert.Equal(t, 30*24*time.Hour, cfg.Janitor.Retention)
}
