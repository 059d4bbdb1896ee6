package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/cache"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/migrations"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	app := &cli.App{
		Name:  "fintrack",
		Usage: "personal finance tracker API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				EnvVars: []string{"FINTRACK_CONFIG"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations",
				Action: migrate,
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, version)
					return nil
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		logrus.WithError(err).Fatal("fintrack")
	}
}

func loadConfig(c *cli.Context) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	logger := logging.SetupLogging(cfg.Log.Level)
	if err := cfg.Validate(); err != nil {
		return nil, logger, err
	}
	return cfg, logger, nil
}

func serve(c *cli.Context) error {
	cfg, logger, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger.WithField("version", version).Info("finance-tracker starting")

	store, err := storage.Open(c.Context, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	listCache, err := cache.New(cfg.Cache, logger)
	if err != nil {
		return err
	}

	publisher, err := events.NewPublisher(cfg.Events, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	dispatcher := operator.NewDispatcher(publisher, cfg.Events.Workers, cfg.Events.QueueSize, logger)
	dispatcher.Start()
	defer dispatcher.Stop()

	httpRest := api.Rest{
		Logger:  logger,
		Config:  cfg.HTTP,
		Service: service.NewService(store, listCache, dispatcher),
		Storage: store,
	}
	return httpRest.Serve(c.Context)
}

func migrate(c *cli.Context) error {
	cfg, logger, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.Storage.Backend != config.StorageBackendPostgres {
		logger.WithField("backend", cfg.Storage.Backend).Info("Migration skipped")
		return nil
	}

	db, err := storage.OpenPostgres(c.Context, cfg.PostgresDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := migrations.Up(db)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migration status")
	return nil
}
