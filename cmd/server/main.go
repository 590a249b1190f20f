// Command server runs the crewdock registration service: the HTTP surface,
// the async assessment pipeline, and the lifecycle event trail.
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crewdock/internal/autoapproval"
	autometrics "crewdock/internal/autoapproval/metrics"
	"crewdock/internal/events"
	"crewdock/internal/journey/cache"
	journeystore "crewdock/internal/journey/store"
	"crewdock/internal/jwttoken"
	"crewdock/internal/notification"
	"crewdock/internal/platform/config"
	"crewdock/internal/platform/httpserver"
	"crewdock/internal/platform/logger"
	platformredis "crewdock/internal/platform/redis"
	profilestore "crewdock/internal/profile/store"
	reghandler "crewdock/internal/registration/handler"
	regmetrics "crewdock/internal/registration/metrics"
	regservice "crewdock/internal/registration/service"
	regstore "crewdock/internal/registration/store"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stores: Postgres when a DSN is configured, in-memory otherwise.
	var (
		registrations regstore.RegistrationStore
		answers       regstore.AnswerStore
		journeys      journeystore.Store
		profiles      profilestore.Store
	)
	if cfg.Postgres.DSN != "" {
		db, err := sql.Open("postgres", cfg.Postgres.DSN)
		if err != nil {
			log.Error("failed to open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("failed to ping postgres", "error", err)
			os.Exit(1)
		}
		registrations = regstore.NewPostgresRegistrations(db)
		answers = regstore.NewPostgresAnswers(db)
		journeys = journeystore.NewPostgres(db)
		profiles = profilestore.NewPostgres(db)
		log.Info("using postgres stores")
	} else {
		registrations = regstore.NewMemoryRegistrations()
		answers = regstore.NewMemoryAnswers()
		memJourneys := journeystore.NewMemory()
		memProfiles := profilestore.NewMemory()
		journeystore.SeedDemo(memJourneys)
		profilestore.SeedDemo(memProfiles)
		journeys = memJourneys
		profiles = memProfiles
		log.Info("using in-memory stores with demo seed data")
	}

	// Effective attribute cache; runs without Redis when unconfigured.
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, effective attributes will not be cached", "error", err)
	}
	var resolver *cache.Resolver
	if redisClient != nil {
		defer redisClient.Close()
		resolver = cache.New(journeys, redisClient.Client, log)
	} else {
		resolver = cache.New(journeys, nil, log)
	}

	// Lifecycle event trail with optional Kafka fan-out.
	var sink events.Sink
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := events.NewKafkaSink(cfg.Kafka)
		if err != nil {
			log.Warn("kafka sink unavailable, events stay local", "error", err)
		} else {
			defer kafkaSink.Close()
			sink = kafkaSink
		}
	}
	eventInbox := make(chan events.Event, 256)
	eventStore := events.NewMemoryStore()
	eventWorker := events.NewWorker(eventStore, sink, eventInbox, log)
	go func() {
		if err := eventWorker.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("event worker stopped", "error", err)
		}
	}()
	publisher := events.NewPublisher(eventInbox, log)

	// Assessment pipeline.
	orchestrator := autoapproval.NewOrchestrator(cfg.AutoApproval.QueueSize, log)
	assessor := autoapproval.NewLocalAssessor(registrations, journeys, profiles, resolver, cfg.AutoApproval.ApproveThreshold)
	assessMetrics := autometrics.New()
	worker := autoapproval.NewWorker(
		autoapproval.Config{
			MaxConcurrent: cfg.AutoApproval.MaxConcurrent,
			MaxAttempts:   cfg.AutoApproval.MaxAttempts,
			BaseBackoff:   cfg.AutoApproval.BaseBackoff,
			CallTimeout:   cfg.AutoApproval.CallTimeout,
		},
		orchestrator.Queue(),
		assessor,
		registrations,
		publisher,
		assessMetrics,
		log,
	)
	go func() {
		if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("assessment worker stopped", "error", err)
		}
	}()

	// Registration service and HTTP surface.
	svc, err := regservice.New(registrations, answers, journeys, profiles,
		regservice.WithScheduler(orchestrator),
		regservice.WithNotifier(notification.NewLogNotifier(log)),
		regservice.WithPublisher(publisher),
		regservice.WithMetrics(regmetrics.New()),
		regservice.WithLogger(log),
	)
	if err != nil {
		log.Error("failed to build registration service", "error", err)
		os.Exit(1)
	}

	jwtService := jwttoken.NewService(cfg.Server.JWTSigningKey, "crewdock")
	tokenValidator := jwttoken.NewMiddlewareAdapter(jwtService)

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())
	reghandler.New(svc, log, tokenValidator).Register(router)

	srv := httpserver.New(cfg.Server.Addr, router)
	go func() {
		log.Info("starting crewdock", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
