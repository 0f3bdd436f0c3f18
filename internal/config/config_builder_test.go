package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_Defaults(t *testing.T) {
	setEnvVars(t, nil)

	cfg, err := newConfigBuilder().withEnv().withFlags([]string{}).withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestConfigBuilder_Priority(t *testing.T) {
	// JSON < env < flags
	jsonPath := writeJSONConfig(t, `{
		"adapter": {"http_address": "http://json:1", "request_timeout": "1s"},
		"storage": {"db": {"dsn": "json.db"}},
		"app": {"log_file": "json.log"}
	}`)
	setEnvVars(t, map[string]string{
		"CONFIG":                  jsonPath,
		"ADAPTER_ADDRESS":         "http://env:2",
		"STORAGE_DB_DATABASE_URI": "env.db",
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-s", "http://flag:3"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "http://flag:3", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "json.log", cfg.App.LogFile)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestConfigBuilder_FlagJSONPathWins(t *testing.T) {
	envJSON := writeJSONConfig(t, `{"app": {"log_file": "env.log"}}`)
	flagJSON := writeJSONConfig(t, `{"app": {"log_file": "flag.log"}}`)
	setEnvVars(t, map[string]string{"CONFIG": envJSON})

	cfg, err := newConfigBuilder().withEnv().withFlags([]string{"-c", flagJSON}).withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "flag.log", cfg.App.LogFile)
}

func TestConfigBuilder_Errors(t *testing.T) {
	t.Run("missing json file", func(t *testing.T) {
		setEnvVars(t, map[string]string{"CONFIG": "/definitely/absent.json"})

		_, err := newConfigBuilder().withEnv().withFlags([]string{}).withJSON().build()
		assert.Error(t, err)
	})

	t.Run("bad flag", func(t *testing.T) {
		setEnvVars(t, nil)

		_, err := newConfigBuilder().withEnv().withFlags([]string{"-a", "bad"}).withJSON().build()
		assert.Error(t, err)
	})
}
