package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "DB_HOST", "DB_NAME", "TOKEN_SECRET", "TOKEN_TTL",
		"BCRYPT_COST", "PORT", "CORS_ORIGINS", "LOG_RETENTION",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "delivery", cfg.DBName)
	assert.Equal(t, "", cfg.TokenSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, 30*24*time.Hour, cfg.LogRetention)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PORT", "8081")

	cfg := Load()

	assert.Equal(t, "s3cret", cfg.TokenSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "8081", cfg.Port)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("BCRYPT_COST", "twelve")

	cfg := Load()

	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5433", DBUser: "u", DBPassword: "p",
		DBName: "goods", DBSSLMode: "require",
	}
	assert.Equal(t, "host=db user=u password=p dbname=goods port=5433 sslmode=require TimeZone=UTC", cfg.DSN())

	cfg.DatabaseURL = "postgres://u:p@db:5433/goods"
	assert.Equal(t, "postgres://u:p@db:5433/goods", cfg.DSN())
}
