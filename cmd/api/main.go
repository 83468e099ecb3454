package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/acazacu/credit-docs/internal/config"
	"github.com/acazacu/credit-docs/internal/docgen"
	"github.com/acazacu/credit-docs/internal/handler"
	"github.com/acazacu/credit-docs/internal/jobs"
	"github.com/acazacu/credit-docs/internal/middleware"
	"github.com/acazacu/credit-docs/internal/models"
	"github.com/acazacu/credit-docs/internal/repository"
	"github.com/acazacu/credit-docs/internal/service"
	"github.com/acazacu/credit-docs/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Document generators
	registry := docgen.NewRegistry()
	registry.Register(models.DocumentTypeContract, docgen.NewContractGenerator(cfg.TemplateDir, logger))

	// Initialize layers
	repo := repository.NewRepository(db)
	sender := email.NewSender(cfg, logger)
	svc := service.NewService(repo, registry, sender, logger, cfg)
	h := handler.NewHandler(svc)

	// Document retention job
	runner := cron.New()
	cleaner := jobs.NewCleaner(cfg, logger)
	if err := cleaner.Schedule(runner); err != nil {
		logger.Fatalf("Failed to schedule cleanup job: %v", err)
	}
	runner.Start()
	defer runner.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/documents", h.GenerateDocument).Methods("POST")
	authRouter.HandleFunc("/documents/types", h.DocumentTypes).Methods("GET")
	authRouter.HandleFunc("/generations", h.RecentGenerations).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
