package main

import (
	"context"
	"fmt"

	"github.com/heartchain/heartchain/internal/adapter"
	"github.com/heartchain/heartchain/internal/config"
	"github.com/heartchain/heartchain/internal/crypto"
	"github.com/heartchain/heartchain/internal/handler"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/server"
	"github.com/heartchain/heartchain/internal/service"
	"github.com/heartchain/heartchain/internal/store"
	"github.com/heartchain/heartchain/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("heartchain-server")
	cfg, err := config.GetStructuredConfig(log)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to postgres")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	codec, err := crypto.NewFieldCipher(cfg.App.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating field cipher")
	}

	blobStore, err := adapter.NewIPFSBlobStore(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob store")
	}

	ledger, err := adapter.NewRESTLedger(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ledger client")
	}

	services := service.NewServices(storages, codec, blobStore, cfg, log)

	if err := services.AuthService.Bootstrap(ctx, cfg.App.AdminLogin, cfg.App.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping admin account")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	workers.NewWorkers(storages, blobStore, ledger, cfg.Workers, log).Run(ctx)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
