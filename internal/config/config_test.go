package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/SalonBookingService/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
user = "salon"
password = "secret"
dbname = "salon_booking"

[schedule]
open_time = "09:00"
close_time = "20:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout, "unset fields keep defaults")
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "09:00", cfg.Schedule.OpenTime)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "salon",
		Password: "secret",
		DBName:   "salon_booking",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=salon password=secret dbname=salon_booking sslmode=disable",
		cfg.DSN())
}

func TestBusinessHours_Defaults(t *testing.T) {
	hours, err := ScheduleConfig{}.BusinessHours()
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("08:00"), hours.OpenTime)
	assert.Equal(t, types.TimeString("18:00"), hours.CloseTime)
	assert.Equal(t, types.TimeString("12:00"), hours.BreakStart)
	assert.Equal(t, types.TimeString("13:00"), hours.BreakEnd)
}

func TestBusinessHours_Overrides(t *testing.T) {
	hours, err := ScheduleConfig{
		OpenTime:   "10:00",
		CloseTime:  "22:00",
		BreakStart: "14:00",
		BreakEnd:   "15:00",
	}.BusinessHours()
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("10:00"), hours.OpenTime)
	assert.Equal(t, types.TimeString("22:00"), hours.CloseTime)
	assert.Equal(t, types.TimeString("14:00"), hours.BreakStart)
	assert.Equal(t, types.TimeString("15:00"), hours.BreakEnd)
}

func TestBusinessHours_Invalid(t *testing.T) {
	_, err := ScheduleConfig{OpenTime: "19:00", CloseTime: "09:00"}.BusinessHours()
	assert.Error(t, err)
}
