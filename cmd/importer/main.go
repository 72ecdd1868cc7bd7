package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/jengzang/attraction-heatmap/internal/config"
	"github.com/jengzang/attraction-heatmap/internal/database"
	"github.com/jengzang/attraction-heatmap/internal/dataset"
	"github.com/jengzang/attraction-heatmap/internal/logger"
	"github.com/jengzang/attraction-heatmap/internal/repository"
)

// importer loads the attractions CSV into the configured SQL database
func main() {
	configPath := flag.String("config", "", "path to a YAML/JSON config file")
	csvPath := flag.String("csv", "", "CSV file to import (defaults to dataset.csv_path)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zlog, err := logger.New("attraction-importer", cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	path := *csvPath
	if path == "" {
		path = cfg.Dataset.CSVPath
	}

	db, err := database.Open(database.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		zlog.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	if _, err := database.NewMigrationManager(db, cfg.Database.Driver, database.Migrations).Migrate(); err != nil {
		zlog.Fatal("Failed to migrate database", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	repo := repository.NewAttractionRepository(db, cfg.Database.Driver)
	n, err := dataset.Import(ctx, dataset.NewCSVSource(path), repo)
	if err != nil {
		zlog.Fatal("Import failed", zap.String("csv", path), zap.Error(err))
	}

	zlog.Info("Import completed", zap.String("csv", path), zap.Int("records", n))
}
