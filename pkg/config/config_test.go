package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 1000, cfg.Report.FetchPageSize)
	assert.Equal(t, 500, cfg.Report.ListPageSize)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.S3.Enabled())
}

func TestFromViper_ProductionSinSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_EnteroInvalidoUsaDefault(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "no-es-numero")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w", DBName: "rollstock", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw@db:5432/rollstock?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
