package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "finopenpos", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 12*time.Hour, cfg.JWT.TokenExpiration)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FINOPENPOS_APP_PORT", "9090")
	t.Setenv("FINOPENPOS_DATABASE_DRIVER", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.Database.IsSQLite())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("FINOPENPOS_DATABASE_DRIVER", "oracle")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RequiresSecretInProduction(t *testing.T) {
	t.Setenv("FINOPENPOS_APP_ENV", "production")
	t.Setenv("FINOPENPOS_JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5433, User: "pos", Password: "pw",
		DBName: "shop", SSLMode: "require",
	}
	assert.Equal(t, "host=db port=5433 user=pos password=pw dbname=shop sslmode=require", d.DSN())
}
