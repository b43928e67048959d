package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"

	"github.com/Mahidhar1516/GNI/internal/assignment"
	"github.com/Mahidhar1516/GNI/internal/attendance"
	"github.com/Mahidhar1516/GNI/internal/auth"
	"github.com/Mahidhar1516/GNI/internal/config"
	"github.com/Mahidhar1516/GNI/internal/course"
	"github.com/Mahidhar1516/GNI/internal/dashboard"
	"github.com/Mahidhar1516/GNI/internal/db"
	"github.com/Mahidhar1516/GNI/internal/health"
	"github.com/Mahidhar1516/GNI/internal/httputil"
	"github.com/Mahidhar1516/GNI/internal/kafka"
	"github.com/Mahidhar1516/GNI/internal/messaging"
	"github.com/Mahidhar1516/GNI/internal/metrics"
	"github.com/Mahidhar1516/GNI/internal/middleware"
	"github.com/Mahidhar1516/GNI/internal/notice"
	"github.com/Mahidhar1516/GNI/internal/placement"
	"github.com/Mahidhar1516/GNI/internal/profile"
	"github.com/Mahidhar1516/GNI/internal/schedule"
	"github.com/Mahidhar1516/GNI/internal/session"
)

const serviceName = "student-portal"

// App owns the HTTP server and every long-lived dependency behind it.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *bun.DB
	server   *http.Server
	nats     *messaging.Producer
	kafka    *kafka.Producer
	sessions *session.Provider
}

// New wires the full portal: database, producers, session provider, and
// every domain handler. Broker connections are optional; a failed connect
// logs a warning and the service runs without that producer.
func New(logger *slog.Logger) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	database := db.New(cfg.Database)
	if err := db.RunMigrations(context.Background(), database,
		(*profile.Profile)(nil),
		(*auth.RefreshToken)(nil),
		(*course.Course)(nil),
		(*course.Enrollment)(nil),
		(*assignment.Assignment)(nil),
		(*assignment.Submission)(nil),
		(*attendance.Record)(nil),
		(*schedule.Entry)(nil),
		(*notice.Notice)(nil),
		(*placement.Job)(nil),
		(*placement.Application)(nil),
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	meter := otel.Meter(serviceName)
	m, err := metrics.New(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	natsProducer, err := messaging.NewProducer(cfg.NATS.URL, cfg.NATS.Subject, logger)
	if err != nil {
		logger.Warn("NATS unavailable, notice events disabled", "error", err)
		natsProducer = nil
	}

	kafkaProducer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	if err != nil {
		logger.Warn("kafka unavailable, activity events disabled", "error", err)
		kafkaProducer = nil
	}

	sessions := session.NewProvider(logger)
	// Sessions do not outlive a restart; identity is re-established per
	// request from the auth cookie.
	sessions.Restore(func() (session.Identity, error) {
		return session.Identity{}, nil
	})

	profileRepo := profile.NewRepository(database)
	profileService := profile.NewService(profileRepo)

	tokenManager, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token manager: %w", err)
	}

	authRepo := auth.NewRepository(database)
	var authProducer auth.ActivityProducer
	if kafkaProducer != nil {
		authProducer = kafkaProducer
	}
	authService := auth.NewService(tokenManager, authRepo, profileRepo, sessions, authProducer, logger)

	courseService := course.NewService(course.NewRepository(database), logger)
	assignmentService := assignment.NewService(assignment.NewRepository(database), logger)
	attendanceService := attendance.NewService(attendance.NewRepository(database), logger)
	scheduleService := schedule.NewService(schedule.NewRepository(database), logger)

	var noticeProducer notice.EventProducer
	if natsProducer != nil {
		noticeProducer = natsProducer
	}
	noticeService := notice.NewService(notice.NewRepository(database), noticeProducer, logger)

	var placementProducer placement.ActivityProducer
	if kafkaProducer != nil {
		placementProducer = kafkaProducer
	}
	placementService := placement.NewService(placement.NewRepository(database), placementProducer, logger)

	dashboardService := dashboard.NewService(profileService, courseService, assignmentService, attendanceService, logger)

	// Signing out invalidates whatever section loads are still in flight.
	sessions.Subscribe(func(identity session.Identity) {
		if !identity.Valid() {
			dashboardService.Reset()
			scheduleService.Reset()
		}
	})

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))

	health.NewHandler().RegisterRoutes(router)
	auth.NewHandler(authService, logger, m).RegisterRoutes(router)

	router.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(tokenManager, logger))
		profile.NewHandler(profileService, logger).RegisterRoutes(r)
		course.NewHandler(courseService, logger, m).RegisterRoutes(r)
		assignment.NewHandler(assignmentService, logger).RegisterRoutes(r)
		attendance.NewHandler(attendanceService, logger).RegisterRoutes(r)
		schedule.NewHandler(scheduleService, logger, m).RegisterRoutes(r)
		notice.NewHandler(noticeService, logger, m).RegisterRoutes(r)
		placement.NewHandler(placementService, logger, m).RegisterRoutes(r)
		dashboard.NewHandler(dashboardService, logger, m).RegisterRoutes(r)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondWithError(w, http.StatusNotFound, "Route not found")
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	return &App{
		cfg:      cfg,
		logger:   logger,
		db:       database,
		server:   server,
		nats:     natsProducer,
		kafka:    kafkaProducer,
		sessions: sessions,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("starting server", "port", a.cfg.Server.Port, "env", a.cfg.Env)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down server")

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if a.nats != nil {
		if err := a.nats.Close(); err != nil {
			a.logger.Error("failed to close NATS producer", "error", err)
		}
	}
	if a.kafka != nil {
		if err := a.kafka.Close(); err != nil {
			a.logger.Error("failed to close kafka producer", "error", err)
		}
	}
	db.Close(a.db)

	a.logger.Info("server stopped")
	return nil
}
