package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-console/internal/audit"
	"github.com/BruksfildServices01/barber-console/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-console/internal/db"
	"github.com/BruksfildServices01/barber-console/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-console/internal/infra/repository"
	"github.com/BruksfildServices01/barber-console/internal/logger"
	"github.com/BruksfildServices01/barber-console/internal/middleware"
	"github.com/BruksfildServices01/barber-console/internal/preference"
	"github.com/BruksfildServices01/barber-console/internal/report"
	"github.com/BruksfildServices01/barber-console/internal/routes"
	"github.com/BruksfildServices01/barber-console/internal/store"
	"github.com/BruksfildServices01/barber-console/internal/summary"
	"github.com/BruksfildServices01/barber-console/internal/timezone"
	"github.com/BruksfildServices01/barber-console/internal/usecase/checkout"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.LogLevel, cfg.LogPretty)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	ctx := context.Background()
	var closers []func() error

	// ======================================================
	// 🔧 STORES
	// ======================================================
	auditLog := audit.New(log.Logger)
	if !timezone.IsValid(cfg.ShopTimezone) {
		log.Warn().Str("timezone", cfg.ShopTimezone).Msg("unknown shop timezone, using default")
	}
	clock := timezone.ShopClock(cfg.ShopTimezone)

	services := store.NewServiceStore(infraRepo.NewServiceGormRepository(db), auditLog)
	appointments := store.NewAppointmentStore(infraRepo.NewAppointmentGormRepository(db), auditLog)
	transactions := store.NewTransactionStore(infraRepo.NewTransactionGormRepository(db), auditLog)

	services.Load(ctx)
	appointments.Load(ctx)
	transactions.Load(ctx)

	// ======================================================
	// 🔌 OPTIONAL INTEGRATIONS
	// ======================================================
	var themeStore preference.Store = preference.NewMemoryStore()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, theme kept in memory")
			_ = client.Close()
		} else {
			themeStore = preference.NewRedisStore(client)
			closers = append(closers, client.Close)
			log.Info().Msg("theme store: redis")
		}
	}

	var generator summary.Generator
	if cfg.SummaryEnabled() {
		gen, err := summary.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn().Err(err).Msg("summary disabled")
		} else {
			generator = gen
		}
	}

	var archiver report.Archiver
	if cfg.ArchiveEnabled() {
		archiver = report.NewS3Archiver(report.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
		})
		log.Info().Str("bucket", cfg.S3Bucket).Msg("report archive: s3")
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	finalize := checkout.NewFinalize(transactions, appointments, clock)
	quickSale := checkout.NewQuickSale(services, finalize)
	exporter := report.NewExporter(transactions, archiver, clock)

	// ======================================================
	// 🧩 HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinLogger(), middleware.CORS(cfg.AllowedOrigins()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Handlers{
		Auth:         handlers.NewAuthHandler(),
		Services:     handlers.NewServiceHandler(services),
		Appointments: handlers.NewAppointmentHandler(appointments),
		Transactions: handlers.NewTransactionHandler(transactions, quickSale),
		Schedule:     handlers.NewScheduleHandler(appointments, clock),
		Checkout:     handlers.NewCheckoutHandler(checkout.NewRegistry(), finalize, services, appointments),
		Dashboard:    handlers.NewDashboardHandler(transactions, appointments, summary.New(generator, cfg.ShopName), clock),
		Reports:      handlers.NewReportHandler(transactions, exporter, clock),
		Preferences:  handlers.NewPreferenceHandler(preference.NewService(themeStore)),
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("shop", cfg.ShopName).Msg("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}

	if sqlDB, err := db.DB(); err == nil {
		closers = append(closers, sqlDB.Close)
	}
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Error().Err(err).Msg("close error")
		}
	}

	log.Info().Msg("server stopped")
}
