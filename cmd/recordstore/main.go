package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/devrev/recordstore/internal/config"
	"github.com/devrev/recordstore/internal/errors"
	"github.com/devrev/recordstore/internal/metrics"
	"github.com/devrev/recordstore/internal/model"
	"github.com/devrev/recordstore/internal/server"
	"github.com/devrev/recordstore/internal/service"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(&cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded",
		zap.String("config_path", configPath),
		zap.Int("initial_capacity", cfg.Store.InitialCapacity),
		zap.String("snapshot_path", cfg.Snapshot.Path))

	m := metrics.NewMetrics()

	svc, err := service.NewRecordService(
		&service.RecordConfig{
			InitialCapacity: cfg.Store.InitialCapacity,
			BTreeDegree:     cfg.Store.BTreeDegree,
		},
		m,
		logger,
	)
	if err != nil {
		logger.Fatal("Failed to initialize record service", zap.Error(err))
	}
	defer svc.Close()

	if err := run(svc, cfg, logger); err != nil {
		logger.Fatal("Demonstration failed",
			zap.Stringer("grpc_code", errors.FromError(err).ToGRPCStatus().Code()),
			zap.Error(err))
	}

	if !cfg.Metrics.Enabled {
		return
	}

	metricsServer := server.NewMetricsServer(
		&server.MetricsServerConfig{
			Addr: fmt.Sprintf(":%d", cfg.Metrics.Port),
			Path: cfg.Metrics.Path,
		},
		m,
		logger,
	)
	if err := metricsServer.Start(); err != nil {
		logger.Fatal("Failed to start metrics server", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down gracefully...")
	if err := metricsServer.Stop(); err != nil {
		logger.Error("Failed to stop metrics server", zap.Error(err))
	}
}

// sampleRecords are the developers the demonstration starts from
func sampleRecords() []model.Record {
	return []model.Record{
		{ID: 1, Name: "Bodheesh VC", Email: "bodheesh@example.com", Skills: "JavaScript,TypeScript,React,Node.js,MongoDB", Salary: 85000},
		{ID: 2, Name: "Alice Johnson", Email: "alice@example.com", Skills: "Java,Spring Boot,MySQL,AWS", Salary: 90000},
		{ID: 3, Name: "Bob Smith", Email: "bob@example.com", Skills: "Python,Django,PostgreSQL,Docker", Salary: 82000},
		{ID: 4, Name: "Carol Davis", Email: "carol@example.com", Skills: "C#,.NET,SQL Server,Azure", Salary: 88000},
	}
}

// run exercises every store once and reports the results through the logger
func run(svc *service.RecordService, cfg *config.Config, logger *zap.Logger) error {
	for _, rec := range sampleRecords() {
		if err := svc.Add(rec); err != nil {
			return fmt.Errorf("failed to add sample record %d: %w", rec.ID, err)
		}
	}

	// Both rejections are expected outcomes
	duplicate := sampleRecords()[0]
	if err := svc.SafeInsert(duplicate); err != nil {
		logger.Info("Duplicate insert rejected", zap.Int32("id", duplicate.ID), zap.Error(err))
	}
	invalid := model.Record{ID: -5, Name: "Nobody", Email: "nobody.example.com", Salary: -1}
	if err := svc.SafeInsert(invalid); err != nil {
		logger.Info("Invalid insert rejected", zap.Int32("id", invalid.ID), zap.Error(err))
	}

	for _, rec := range svc.Records() {
		logger.Info("Listed record",
			zap.Int32("id", rec.ID),
			zap.String("name", rec.Name),
			zap.String("email", rec.Email),
			zap.Strings("skills", model.ParseSkills(rec.Skills)),
			zap.Float32("salary", rec.Salary))
	}

	for i, rec := range svc.SortedBySalary() {
		logger.Info("Ranked by salary", zap.Int("rank", i+1), zap.String("name", rec.Name), zap.Float32("salary", rec.Salary))
	}
	for _, rec := range svc.SortedByName() {
		logger.Info("Ordered by name", zap.String("name", rec.Name), zap.Int32("id", rec.ID))
	}

	for _, id := range []int32{2, 3, 999} {
		if rec, found := svc.Lookup(id); found {
			logger.Info("Hash lookup hit", zap.Int32("id", id), zap.String("name", rec.Name))
		} else {
			logger.Info("Hash lookup miss", zap.Int32("id", id))
		}
	}
	if _, err := svc.Get(999); err != nil {
		logger.Info("Get rejected", zap.Int32("id", 999), zap.Stringer("code", errors.GetCode(err)))
	}
	logger.Info("Linear search", zap.Int32("id", 2), zap.Int("index", svc.IndexOf(2)))

	stats := svc.Stats()
	logger.Info("Salary statistics",
		zap.Int("count", stats.Count),
		zap.Float32("average", stats.Average),
		zap.Float32("min", stats.Min),
		zap.Float32("max", stats.Max))

	if err := svc.SaveSnapshot(cfg.Snapshot.Path); err != nil {
		return err
	}
	loaded, err := svc.LoadSnapshot(cfg.Snapshot.Path)
	if err != nil {
		return err
	}
	defer loaded.Close()
	logger.Info("Snapshot verified", zap.Int("records", loaded.Len()), zap.Int("capacity", loaded.Cap()))

	return nil
}

// initLogger initializes the zap logger from the logging configuration
func initLogger(cfg *config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	if cfg.Format == "console" {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)
	return config.Build()
}
