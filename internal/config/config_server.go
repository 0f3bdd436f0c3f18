package config

import (
	"fmt"
	"time"
)

// ServerApp holds token settings of the note API server.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerDB holds the PostgreSQL DSN.
type ServerDB struct {
	DSN string
}

type ServerStorage struct {
	DB ServerDB
}

// ServerConfig is the server view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage ServerStorage
}

// GetServerConfig loads the merged configuration, maps the server fields
// and validates them.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: ServerDB{DSN: cfg.Storage.DB.DSN},
		},
	}
}
