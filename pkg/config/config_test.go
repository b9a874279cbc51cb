package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STRIPE_SECRET_KEY", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Equal(t, "That Golf Place - Main Location", cfg.Facility.DefaultLocation)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.NATS.URL)
	assert.False(t, cfg.Server.TrustProxyHeaders)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("DB_MAX_CONNS", "not-a-number")
	t.Setenv("EMAIL_DEV_MODE", "false")
	t.Setenv("TRUST_PROXY_HEADERS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://thatgolfplace.com, http://localhost:8081")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 10, cfg.Database.MaxConns, "unparseable ints fall back")
	assert.False(t, cfg.Email.DevMode)
	assert.True(t, cfg.Server.TrustProxyHeaders)
	assert.Equal(t, []string{"https://thatgolfplace.com", "http://localhost:8081"}, cfg.Server.CORSAllowedOrigins)
}

func TestValidate_RequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STRIPE_SECRET_KEY", "")

	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
	assert.Contains(t, err.Error(), "STRIPE_SECRET_KEY is required")
}

func TestValidate_OK(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("FACILITY_TIMEZONE", "UTC")

	cfg := Load()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: "mysql"},
		Auth:     AuthConfig{JWTSecret: "x", AccessTokenTTL: time.Hour},
		Stripe:   StripeConfig{SecretKey: "y"},
		Facility: FacilityConfig{Timezone: "UTC"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown DATABASE_DRIVER "mysql"`)
}
