// Command smarthome loads a home layout, publishes its report and
// optionally serves the latest report over HTTP until interrupted.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/p0sel0k/hw3/migrations"

	"github.com/p0sel0k/hw3/internal/api"
	"github.com/p0sel0k/hw3/internal/audit"
	"github.com/p0sel0k/hw3/internal/controller"
	"github.com/p0sel0k/hw3/internal/home"
	"github.com/p0sel0k/hw3/internal/infrastructure/config"
	"github.com/p0sel0k/hw3/internal/infrastructure/database"
	"github.com/p0sel0k/hw3/internal/infrastructure/influxdb"
	"github.com/p0sel0k/hw3/internal/infrastructure/logging"
	"github.com/p0sel0k/hw3/internal/infrastructure/mqtt"
	"github.com/p0sel0k/hw3/internal/report"
)

// Version information, set at build time via ldflags:
// go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the infrastructure, publishes one report and, when the API is
// enabled, blocks until ctx is cancelled.
func run(ctx context.Context) error {
	log := logging.Default()
	log.Info("starting smarthome",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log = logging.New(cfg.Logging, version)
	log.Info("configuration loaded", "path", configPath, "home", cfg.Home.Name)

	var journal audit.Repository
	if cfg.Journal.Enabled {
		db, err := openJournal(ctx, cfg.Journal)
		if err != nil {
			return err
		}
		defer func() {
			log.Info("closing journal database")
			if closeErr := db.Close(); closeErr != nil {
				log.Error("error closing journal database", "error", closeErr)
			}
		}()
		journal = audit.NewSQLiteRepository(db.DB)
		log.Info("journal ready", "path", cfg.Journal.Path)
	} else {
		log.Info("journal disabled")
	}

	snapshot := report.NewSnapshot(cfg.Home.Name)
	sinks, err := consoleSinks(cfg.Report)
	if err != nil {
		return err
	}
	sinks = append(sinks, snapshot)

	if cfg.MQTT.Enabled {
		mqttClient, err := mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		mqttClient.SetLogger(log)
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		sink := report.NewMQTTSink(mqttClient, cfg.Home.Name)
		sinks = append(sinks, sink)
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"topic", sink.Topic(),
		)
	} else {
		log.Info("MQTT disabled")
	}

	var telemetry controller.Telemetry
	if cfg.InfluxDB.Enabled {
		influxClient, err := influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		telemetry = influxClient
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)
	} else {
		log.Info("InfluxDB disabled")
	}

	h, err := home.Seed(cfg.Home, log)
	if err != nil {
		return fmt.Errorf("seeding home: %w", err)
	}
	log.Info("home seeded", "home", h.Name(), "rooms", h.Len())

	ctrl, err := controller.New(controller.Deps{
		Home:      h,
		Journal:   journal,
		Sinks:     sinks,
		Telemetry: telemetry,
		Logger:    log,
	})
	if err != nil {
		return fmt.Errorf("creating controller: %w", err)
	}

	if _, err := ctrl.PublishReport(ctx); err != nil {
		return fmt.Errorf("publishing report: %w", err)
	}
	log.Info("report published", "sinks", len(sinks))

	if !cfg.API.Enabled {
		return nil
	}

	server, err := api.New(api.Deps{
		Config:  cfg.API,
		Logger:  log,
		Reports: snapshot,
		Journal: journal,
		Version: version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	log.Info("initialisation complete, waiting for shutdown signal")
	<-ctx.Done()
	log.Info("shutdown signal received, cleaning up")
	return nil
}

// getConfigPath returns SMARTHOME_CONFIG if set, otherwise the default path.
func getConfigPath() string {
	if path := os.Getenv("SMARTHOME_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// openJournal opens and migrates the journal database.
func openJournal(ctx context.Context, cfg config.JournalConfig) (*database.DB, error) {
	db, err := database.Open(database.Config{
		Path:        cfg.Path,
		WALMode:     true,
		BusyTimeout: cfg.BusyTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close() //nolint:errcheck // Already failing
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

// consoleSinks builds the writer and file sinks selected by cfg.
func consoleSinks(cfg config.ReportConfig) ([]report.Sink, error) {
	var sinks []report.Sink

	output := strings.ToLower(cfg.Output)
	var w io.Writer
	switch output {
	case "stdout", "":
		output = "stdout"
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	case "none":
	default:
		return nil, fmt.Errorf("unknown report output %q", cfg.Output)
	}
	if w != nil {
		sinks = append(sinks, report.NewWriterSink(output, w))
	}

	if cfg.File != "" {
		sinks = append(sinks, report.NewFileSink(cfg.File))
	}
	return sinks, nil
}
