package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/nerrad567/estate-core/migrations"

	"github.com/nerrad567/estate-core/internal/api"
	"github.com/nerrad567/estate-core/internal/array"
	"github.com/nerrad567/estate-core/internal/audit"
	"github.com/nerrad567/estate-core/internal/infrastructure/config"
	"github.com/nerrad567/estate-core/internal/infrastructure/database"
	"github.com/nerrad567/estate-core/internal/infrastructure/influxdb"
	"github.com/nerrad567/estate-core/internal/infrastructure/logging"
	"github.com/nerrad567/estate-core/internal/infrastructure/mqtt"
	"github.com/nerrad567/estate-core/internal/property"
)

func newServeCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), *cfgPath)
		},
	}
}

// run starts every component, blocks until ctx is cancelled, then shuts
// down in reverse order.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//   - flagPath: Value of --config; empty selects $ESTATE_CONFIG or the default path
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context, flagPath string) error {
	log := logging.Default()
	log.Info("starting Estate Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	cfg, source, err := loadConfig(flagPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "source", source)

	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Audit log database
	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	auditRepo := audit.NewSQLiteRepository(db.DB)
	recorder := audit.NewRecorder(auditRepo, audit.DefaultBufferSize)

	// Collections
	properties := property.NewCollection()
	properties.SetLogger(log.With("component", "property"))
	if cfg.Seed.Properties {
		if seedErr := properties.Seed(ctx, property.SampleProperties()); seedErr != nil {
			return fmt.Errorf("seeding properties: %w", seedErr)
		}
	}
	list := array.NewCollection(cfg.Seed.Array)
	log.Info("collections initialised",
		"properties", properties.Count(),
		"list", list.Len(),
	)

	deps := api.Deps{
		Config:     cfg.API,
		WS:         cfg.WebSocket,
		Logger:     log,
		Properties: properties,
		Array:      list,
		AuditRepo:  auditRepo,
		Recorder:   recorder,
		DB:         db,
		Version:    version,
	}

	// Optional sinks: a failed connection degrades to running without them.
	if mqttClient := connectMQTT(cfg.MQTT, log); mqttClient != nil {
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		deps.Events = mqttClient
	}
	if influxClient := connectInfluxDB(cfg.InfluxDB, log); influxClient != nil {
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		deps.Points = influxClient
	}

	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("health check failed: database: %w", err)
	}

	server, err := api.New(deps)
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	log.Info("initialisation complete, waiting for shutdown signal",
		"address", fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port),
	)

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	if closeErr := server.Close(); closeErr != nil {
		log.Error("error stopping API server", "error", closeErr)
	}

	log.Info("Estate Core stopped")
	return nil
}

// configPath resolves the config file: --config, then $ESTATE_CONFIG, then
// the default path. explicit is false only for the default.
func configPath(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if path := os.Getenv(configEnvVar); path != "" {
		return path, true
	}
	return defaultConfigPath, false
}

// loadConfig loads the resolved config file. A missing default file falls
// back to built-in defaults; a missing explicit file is an error.
func loadConfig(flagPath string) (*config.Config, string, error) {
	path, explicit := configPath(flagPath)

	cfg, err := config.Load(path)
	if err == nil {
		return cfg, path, nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return config.Default(), "defaults", nil
	}
	return nil, path, err
}

// connectMQTT returns nil when MQTT is disabled or the broker is unreachable.
func connectMQTT(cfg config.MQTTConfig, log *logging.Logger) *mqtt.Client {
	if !cfg.Enabled {
		log.Info("MQTT disabled")
		return nil
	}

	client, err := mqtt.Connect(cfg)
	if err != nil {
		log.Warn("MQTT unavailable, change events will not be published", "error", err)
		return nil
	}
	client.SetLogger(log.With("component", "mqtt"))

	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.Broker.Host, cfg.Broker.Port),
		"client_id", cfg.Broker.ClientID,
	)
	return client
}

// connectInfluxDB returns nil when InfluxDB is disabled or unreachable.
func connectInfluxDB(cfg config.InfluxDBConfig, log *logging.Logger) *influxdb.Client {
	client, err := influxdb.Connect(cfg)
	if errors.Is(err, influxdb.ErrDisabled) {
		log.Info("InfluxDB disabled")
		return nil
	}
	if err != nil {
		log.Warn("InfluxDB unavailable, change events will not be recorded", "error", err)
		return nil
	}

	client.SetOnError(func(err error) {
		log.Error("InfluxDB write error", "error", err)
	})
	log.Info("InfluxDB connected",
		"url", cfg.URL,
		"org", cfg.Org,
		"bucket", cfg.Bucket,
	)
	return client
}
