package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("LAB_REDIS_PASSWORD", "s3cret")

	path := writeConfig(t, `
[server]
http_port = 9090

[logs]
level = "debug"

[lock]
backend = "Redis"
ttl_ms = 4000
retry_ms = 10

[redis]
address = "localhost:6379"
password = "${LAB_REDIS_PASSWORD}"

[policy]
half_day_cutoff = "13:00"
timezone = "Asia/Kolkata"

[completion]
enabled = true
interval_seconds = 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, LockBackendRedis, cfg.Lock.Backend)
	assert.Equal(t, "s3cret", cfg.Redis.Password)
	assert.Equal(t, 4*time.Second, cfg.LockTTL())
	assert.Equal(t, 10*time.Millisecond, cfg.LockRetry())
	assert.Equal(t, 3*time.Second, cfg.LockTimeout())
	assert.Equal(t, "13:00", cfg.Policy.HalfDayCutoff)
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
	assert.True(t, cfg.Completion.Enabled)
	assert.Equal(t, time.Minute, cfg.CompletionInterval())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, LockBackendLocal, cfg.Lock.Backend)
	assert.Equal(t, "12:00", cfg.Policy.HalfDayCutoff)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, time.Hour, cfg.CompletionInterval())
	assert.Empty(t, cfg.Seed.Path)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `[server`},
		{"port", "[server]\nhttp_port = 70000"},
		{"backend", "[lock]\nbackend = \"etcd\""},
		{"redis without address", "[lock]\nbackend = \"redis\""},
		{"cutoff", "[policy]\nhalf_day_cutoff = \"noon\""},
		{"timezone", "[policy]\ntimezone = \"Mars/Olympus\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadSeed_Default(t *testing.T) {
	seed, err := LoadSeed("")
	require.NoError(t, err)

	assert.Len(t, seed.Slots, 7)
	assert.Len(t, seed.Equipment, 8)
	assert.Len(t, seed.Supervisors, 5)
	assert.Len(t, seed.Holidays, 3)
	assert.Len(t, seed.Rules, 3)
	assert.Len(t, seed.Breaks, 2)

	for _, e := range seed.Equipment {
		_, err := e.ToDomain()
		assert.NoError(t, err, "equipment %s", e.ID)
	}
	for _, h := range seed.Holidays {
		_, err := h.ToDomain()
		assert.NoError(t, err, "holiday %s", h.Name)
	}
	for _, r := range seed.Rules {
		_, err := r.ToDomain()
		assert.NoError(t, err, "rule %s", r.Name)
	}

	lunch, err := seed.Breaks[0].ToDomain()
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, lunch.Weekdays)

	saturday, err := seed.Rules[0].ToDomain()
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, saturday.Weekday)
}

func TestParseSeed_Invalid(t *testing.T) {
	slot := `slots: [{ id: a, name: A, start_time: "08:00", end_time: "10:00", base_cost: 1 }]` + "\n"

	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "slots: [oops"},
		{"no slots", "equipment: []"},
		{"duplicate equipment", slot + `equipment: [{ id: "1", name: A, status: active }, { id: "1", name: B, status: active }]`},
		{"student without supervisor", slot + `students: [{ id: s1, supervisor_id: "9" }]`},
		{"override for unknown equipment", slot + `slot_overrides: [{ equipment_id: "9", generate: { open: "08:00", close: "12:00", duration_minutes: 60 } }]`},
		{"override without slots", slot + "equipment: [{ id: \"1\", name: A, status: active }]\n" + `slot_overrides: [{ equipment_id: "1" }]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
