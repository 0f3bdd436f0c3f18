package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/client"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/session"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range buildInfo.Lines() {
		fmt.Println(line)
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		// the log file is not known yet
		logger.NewLogger("go-note-client").Error().Err(err).Msg("error getting configs")
		os.Exit(1)
	}

	if err = run(context.Background(), cfg, buildInfo); err != nil {
		fmt.Println("client stopped with error:", err)
		os.Exit(1)
	}
}

// run owns every resource it opens, so deferred cleanup always happens
// before main decides the exit code.
func run(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo) error {
	log, closeLog := logger.NewClientLogger("go-note-client", cfg.App.LogFile)
	defer closeLog()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create local storage")
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		return fmt.Errorf("create server adapter: %w", err)
	}

	userSession := session.New(storages.SessionRepository, log)
	services := service.NewClientServices(userSession, serverAdapter, log)
	ui := tui.New(services, buildInfo, log)

	if err = client.NewApp(services, ui, log).Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		return err
	}

	return nil
}
