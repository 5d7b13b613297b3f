package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pratik-mahalle/cloudsentry/internal/api/handlers"
	"github.com/pratik-mahalle/cloudsentry/internal/api/router"
	"github.com/pratik-mahalle/cloudsentry/internal/config"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/monitoring"
	"github.com/pratik-mahalle/cloudsentry/internal/notify"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/validator"
	"github.com/pratik-mahalle/cloudsentry/internal/providers"
	"github.com/pratik-mahalle/cloudsentry/internal/repository/postgres"
	"github.com/pratik-mahalle/cloudsentry/internal/services"
	"github.com/pratik-mahalle/cloudsentry/migrations"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger.Init(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.OutputPath,
	})
	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := postgres.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, migrations.FS); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("Database migrations applied")

	// Repositories
	productRepo := postgres.NewProductRepository(db)
	resourceRepo := postgres.NewResourceRepository(db)
	alertRepo := postgres.NewAlertRepository(db)
	incidentRepo := postgres.NewIncidentRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	// Notification channels
	channels := []notify.Channel{
		notify.NewEmailChannel(cfg.SMTP),
	}
	if cfg.Slack.WebhookURL != "" {
		channels = append(channels, notify.NewSlackChannel(cfg.Slack))
	}
	dispatcher := notify.NewDispatcher(channels, cfg.Monitoring.ChannelTimeout, log)

	// Metric sources
	var sources []monitoring.MetricSource
	awsCfg, err := providers.NewAWSConfig(context.Background(), cfg.AWS)
	if err != nil {
		log.ErrorWithErr(err, "AWS metric source unavailable")
	} else {
		sources = append(sources, providers.NewCloudWatchSource(awsCfg, log))
	}

	// Services
	auditSvc := services.NewAuditService(auditRepo, log)
	productSvc := services.NewProductService(productRepo, log)
	resourceSvc := services.NewResourceService(resourceRepo, productRepo, log)
	alertSvc := services.NewAlertService(alertRepo, auditSvc, dispatcher, log)
	incidentSvc := services.NewIncidentService(incidentRepo, auditSvc, log)
	securitySvc := services.NewSecurityService(resourceRepo, alertSvc, auditSvc, log)
	monitorSvc := services.NewMonitorService(resourceRepo, sources,
		cfg.Monitoring.Thresholds, cfg.Monitoring.FetchTimeout, log)

	val := validator.New()

	h := &router.Handlers{
		Health:     handlers.NewHealthHandler(db, log),
		Product:    handlers.NewProductHandler(productSvc, log, val),
		Resource:   handlers.NewResourceHandler(resourceSvc, log, val),
		Alert:      handlers.NewAlertHandler(alertSvc, log, val),
		Incident:   handlers.NewIncidentHandler(incidentSvc, log, val),
		Audit:      handlers.NewAuditHandler(auditSvc, log),
		Security:   handlers.NewSecurityHandler(securitySvc, log, val),
		Monitoring: handlers.NewMonitoringHandler(monitorSvc, log),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		log.Infof("Received signal %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
