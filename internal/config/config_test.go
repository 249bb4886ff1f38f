package config

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

const minimalConfig = `
[database]
host = "localhost"
dbname = "hotel"
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse(minimalConfig)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 168*time.Hour, cfg.Auth.SessionTTL())
	assert.Equal(t, time.Minute, cfg.Auth.RateLimitWindow())
	assert.Equal(t, "Asia/Makassar", cfg.Calendar.Timezone)
	assert.False(t, cfg.Auth.Google.Enabled())
	assert.False(t, cfg.Cloudinary.Enabled())

	ranges, err := cfg.Calendar.Ranges()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBookedRanges, ranges)
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("HOTEL_DB_PASSWORD", "s3cret")
	t.Setenv("HOTEL_GOOGLE_SECRET", "google-secret")

	cfg, err := Parse(minimalConfig + `
password = "${HOTEL_DB_PASSWORD}"

[auth.google]
client_id = "client"
client_secret = "${HOTEL_GOOGLE_SECRET}"
`)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "google-secret", cfg.Auth.Google.ClientSecret)
	assert.True(t, cfg.Auth.Google.Enabled())
	assert.Equal(t, "host=localhost port=5432 user= password=s3cret dbname=hotel sslmode=disable", cfg.Database.DSN())
}

func TestParse_BookedRanges(t *testing.T) {
	cfg, err := Parse(minimalConfig + `
[[calendar.booked_ranges]]
start = "2026-01-05"
end = "2026-01-09"
`)
	require.NoError(t, err)

	ranges, err := cfg.Calendar.Ranges()
	require.NoError(t, err)
	assert.Equal(t, []domain.BookedRange{{Start: types.DateString("2026-01-05"), End: types.DateString("2026-01-09")}}, ranges)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing database host", "[database]\ndbname = \"hotel\"\n"},
		{"bad port", minimalConfig + "[server]\nhttp_port = 70000\n"},
		{"bad timezone", minimalConfig + "[calendar]\ntimezone = \"Mars/Olympus\"\n"},
		{"empty range", minimalConfig + "[[calendar.booked_ranges]]\nstart = \"2026-01-05\"\nend = \"2026-01-05\"\n"},
		{"malformed range date", minimalConfig + "[[calendar.booked_ranges]]\nstart = \"2026-1-5\"\nend = \"2026-01-09\"\n"},
		{"bad trusted proxy", minimalConfig + "[server]\ntrusted_proxies = [\"10.0.0.300\"]\n"},
		{"bad trusted proxy cidr", minimalConfig + "[server]\ntrusted_proxies = [\"10.0.0.0/40\"]\n"},
		{"bad toml", "[database\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_TrustedProxies(t *testing.T) {
	cfg, err := Parse(minimalConfig + `
[server]
trusted_proxies = ["10.0.0.0/8", "192.168.1.10", "::1"]
`)
	require.NoError(t, err)

	nets, err := cfg.Server.TrustedProxyNets()
	require.NoError(t, err)
	require.Len(t, nets, 3)
	assert.True(t, nets[0].Contains(net.ParseIP("10.20.30.40")))
	assert.True(t, nets[1].Contains(net.ParseIP("192.168.1.10")))
	assert.False(t, nets[1].Contains(net.ParseIP("192.168.1.11")))
	assert.True(t, nets[2].Contains(net.ParseIP("::1")))
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hotel", cfg.Database.DBName)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
