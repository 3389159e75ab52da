package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "carrental-backend/internal/api/http"
	"carrental-backend/internal/config"
	"carrental-backend/internal/jobs"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/repository/csvstore"
	"carrental-backend/internal/repository/memory"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/scheduler"
	"carrental-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting car rental agency backend",
		"address", cfg.GetServerAddress(),
		"inventory_backend", cfg.Inventory.Backend,
	)

	var (
		vehicleRepo   repository.VehicleRepository
		customerRepo  repository.CustomerRepository
		agreementRepo repository.AgreementRepository
	)

	switch cfg.Inventory.Backend {
	case "postgres":
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to open database", "error", err)
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Database)

		store := postgres.NewStore(db)
		vehicleRepo = store.VehicleRepository
		customerRepo = store.CustomerRepository
		agreementRepo = store.AgreementRepository

	case "csv":
		repo, err := csvstore.NewVehicleRepository(cfg.Inventory.File)
		if err != nil {
			// Soft failure: the agency stays up with zero vehicles.
			logger.Warn("Inventory source unreadable, starting with empty inventory",
				"file", cfg.Inventory.File, "error", err)
		} else {
			logger.Info("Inventory loaded", "file", cfg.Inventory.File)
		}
		vehicleRepo = repo
		customerRepo = memory.NewCustomerRepository()
		agreementRepo = memory.NewAgreementRepository()

	default:
		vehicleRepo = memory.NewVehicleRepository()
		customerRepo = memory.NewCustomerRepository()
		agreementRepo = memory.NewAgreementRepository()
	}

	addons := service.NewStaticAddonCatalog()
	agency := service.NewAgencyService(vehicleRepo, customerRepo, agreementRepo, addons)

	jobRunner := jobs.NewJobRunner(agreementRepo, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	r := httpapi.NewRouter(agency, addons)
	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), r); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
