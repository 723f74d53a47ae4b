package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ATTENDANCE_TIMEZONE", "")
	t.Setenv("ATTENDANCE_LATE_THRESHOLD", "")
	t.Setenv("ATTENDANCE_POLICY_FILE", "")
	t.Setenv("STORAGE_TYPE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Asia/Kolkata", cfg.Attendance.Timezone)
	assert.Equal(t, "Asia/Kolkata", cfg.Attendance.Location().String())
	assert.Equal(t, 9*time.Hour+30*time.Minute, cfg.Attendance.Threshold())
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.True(t, strings.HasPrefix(cfg.DatabaseURL(), "postgres://postgres:secret@"))
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestValidate_RejectsBadValues(t *testing.T) {
	base := func() *Config {
		return &Config{
			Database: DatabaseConfig{Password: "x"},
			JWT:      JWTConfig{Secret: "x", AccessExpiration: "1h"},
			Storage:  StorageConfig{Type: "memory"},
			Attendance: AttendanceConfig{
				Timezone:      "Asia/Kolkata",
				LateThreshold: "09:30",
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"bad threshold", func(c *Config) { c.Attendance.LateThreshold = "9.30am" }, "ATTENDANCE_LATE_THRESHOLD"},
		{"bad timezone", func(c *Config) { c.Attendance.Timezone = "Mars/Olympus" }, "ATTENDANCE_TIMEZONE"},
		{"unknown storage", func(c *Config) { c.Storage.Type = "ftp" }, "STORAGE_TYPE"},
		{"s3 without bucket", func(c *Config) { c.Storage.Type = "s3" }, "S3_BUCKET"},
		{"bad expiration", func(c *Config) { c.JWT.AccessExpiration = "forever" }, "JWT_ACCESS_EXPIRATION_TIME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.NoError(t, base().Validate())
}

func TestReadPolicy(t *testing.T) {
	doc := `
timezone = "UTC"
late_threshold = "10:00"

[[holidays]]
date = "2025-01-26"
name = "Republic Day"
`
	p, err := ReadPolicy(strings.NewReader(doc))
	require.NoError(t, err)

	a := AttendanceConfig{Timezone: "Asia/Kolkata", LateThreshold: "09:30"}
	a.Apply(p)
	require.NoError(t, a.resolve())

	assert.Equal(t, time.UTC, a.Location())
	assert.Equal(t, 10*time.Hour, a.Threshold())
	assert.Equal(t, "Republic Day", a.Holidays["2025-01-26"])
}

func TestReadPolicy_InvalidHolidayDate(t *testing.T) {
	doc := `
[[holidays]]
date = "26/01/2025"
name = "Republic Day"
`
	_, err := ReadPolicy(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestLoad_PolicyFile(t *testing.T) {
	setRequiredEnv(t)
	path := filepath.Join(t.TempDir(), "policy.toml")
	require.NoError(t, os.WriteFile(path, []byte("late_threshold = \"09:15\"\n"), 0o644))
	t.Setenv("ATTENDANCE_POLICY_FILE", path)
	t.Setenv("ATTENDANCE_LATE_THRESHOLD", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9*time.Hour+15*time.Minute, cfg.Attendance.Threshold())
}

func TestParseClockTime(t *testing.T) {
	d, err := ParseClockTime("17:45")
	require.NoError(t, err)
	assert.Equal(t, 17*time.Hour+45*time.Minute, d)

	_, err = ParseClockTime("25:00")
	assert.Error(t, err)
}
