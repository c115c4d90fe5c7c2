package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/bananaltda/BRS-ReservationService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/bananaltda/BRS-ReservationService/internal/api/handlers/delete_reservation"
	listLocaisHandler "github.com/bananaltda/BRS-ReservationService/internal/api/handlers/list_locais"
	listReservationsHandler "github.com/bananaltda/BRS-ReservationService/internal/api/handlers/list_reservations"
	listSalasHandler "github.com/bananaltda/BRS-ReservationService/internal/api/handlers/list_salas"
	updateReservationHandler "github.com/bananaltda/BRS-ReservationService/internal/api/handlers/update_reservation"
	"github.com/bananaltda/BRS-ReservationService/internal/api/middleware"
	"github.com/bananaltda/BRS-ReservationService/internal/config"
	reservationRepo "github.com/bananaltda/BRS-ReservationService/internal/infra/storage/reservation"
	reservationsService "github.com/bananaltda/BRS-ReservationService/internal/service/reservations"
	"github.com/bananaltda/BRS-ReservationService/pkg/logger"
	"github.com/bananaltda/BRS-ReservationService/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BRS-ReservationService store...")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if err := reservationRepo.Migrate(context.Background(), db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Schema ready")

	repo := reservationRepo.NewRepository(db)
	service := reservationsService.NewService(repo, log)

	listReservations := listReservationsHandler.NewHandler(service, log)
	createReservation := createReservationHandler.NewHandler(service, log)
	updateReservation := updateReservationHandler.NewHandler(service, log)
	deleteReservation := deleteReservationHandler.NewHandler(service, log)
	listLocais := listLocaisHandler.NewHandler(service, log)
	listSalas := listSalasHandler.NewHandler(service, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/reservas", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservas", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservas/{id}", updateReservation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservas/{id}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Helper routes for form suggestions
	api.HandleFunc("/locais", listLocais.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salas", listSalas.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
