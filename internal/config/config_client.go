package config

import (
	"fmt"
	"time"
)

// ClientApp holds client process settings.
type ClientApp struct {
	// LogFile is the client log destination.
	LogFile string
}

// ClientAdapter holds settings of the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the note API base URL.
	HTTPAddress string
	// RequestTimeout bounds one outbound request; zero means no timeout.
	RequestTimeout time.Duration
}

// ClientDB points at the SQLite file holding the persisted session.
type ClientDB struct {
	DSN string
}

type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig loads the merged configuration, maps the client fields
// and validates them.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	return &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
	}
}
