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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
user = "barberia"
dbname = "barberia"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "America/Mexico_City", cfg.Agenda.Timezone)
	assert.Equal(t, 15, cfg.Agenda.SlotSizeMin)
	assert.Equal(t, 0, cfg.Agenda.BufferBetweenMin)
	assert.Equal(t, 30, cfg.Agenda.MaxAdvanceDays)

	loc, err := cfg.Agenda.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Mexico_City", loc.String())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[server]
http_port = 9090

[agenda]
timezone = "America/New_York"
slot_size_min = 30
buffer_between_min = 5
min_advance_min = 120
max_advance_days = 14
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Agenda.SlotSizeMin)
	assert.Equal(t, 5, cfg.Agenda.BufferBetweenMin)
	assert.Equal(t, 120, cfg.Agenda.MinAdvanceMin)
	assert.Equal(t, 14, cfg.Agenda.MaxAdvanceDays)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing database host", `
[database]
user = "barberia"
dbname = "barberia"
`},
		{"unknown timezone", minimalConfig + `
[agenda]
timezone = "Mars/Olympus"
`},
		{"negative buffer", minimalConfig + `
[agenda]
buffer_between_min = -1
`},
		{"negative notice", minimalConfig + `
[agenda]
min_advance_min = -10
`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "barberia", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=barberia sslmode=disable", d.DSN())
}
