package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chillstay/internal/app/resolve"
	appstats "chillstay/internal/app/stats"
	"chillstay/internal/domain/hotel"
	domainstats "chillstay/internal/domain/stats"
	"chillstay/internal/domain/user"
	"chillstay/internal/infra/broker/kafka"
	"chillstay/internal/infra/cache"
	"chillstay/internal/infra/config"
	mongostore "chillstay/internal/infra/db/mongo"
	ginserver "chillstay/internal/infra/http/gin"
	"chillstay/internal/infra/obs"
	"chillstay/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	if len(cfg.YearlyWindow) > 0 {
		domainstats.DefaultYearlyWindow = cfg.YearlyWindow
	}

	app, cleanup, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("application wiring failed", "error", err)
		os.Exit(1)
	}
	if cleanup != nil {
		defer cleanup()
	}

	if cfg.CacheTTL > 0 {
		go app.sweepCaches(ctx, cfg.CacheTTL, logger)
	}

	if len(cfg.KafkaBrokers) > 0 {
		consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, nil, &kafka.HotelEventHandler{
			Cache:  app.hotelCache,
			Logger: logger,
		})
		if err != nil {
			logger.Error("kafka consumer init failed", "error", err)
			os.Exit(1)
		}
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx, []string{cfg.HotelEventsTopic}); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("hotel events consumer stopped", "error", err)
			}
		}()
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: app.ready,
	}, ginserver.Handlers{
		Stats: ginserver.StatsHandler{Service: app.service, Logger: logger},
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "batch_limit", cfg.BatchLimit)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	service    *appstats.Service
	hotelCache *cache.Map[string, hotel.Summary]
	userCache  *cache.Map[string, user.Summary]
	ready      func() error
}

func buildApplication(ctx context.Context, cfg config.Config, logger *slog.Logger) (*application, func(), error) {
	hotelCache := cache.New[string, hotel.Summary]()
	userCache := cache.New[string, user.Summary]()

	var (
		bookings   appstats.BookingStore
		hotelStore resolve.Store[hotel.Summary]
		userStore  resolve.Store[user.Summary]
		ready      func() error
		cleanup    func()
	)

	if cfg.MongoURI != "" {
		client, err := mongostore.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		bookings = mongostore.NewBookingStore(client.DB, logger)
		hotelStore = mongostore.NewHotelStore(client.DB, cfg.BatchLimit, logger)
		userStore = mongostore.NewUserStore(client.DB, cfg.BatchLimit, logger)
		ready = func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx)
		}
		cleanup = func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Close(closeCtx); err != nil {
				logger.Warn("mongo disconnect failed", "error", err)
			}
		}
		logger.Info("using mongodb stores", "database", cfg.MongoDB)
	} else {
		bookings = memory.NewBookingStore()
		hotelStore = memory.NewHotelStore(cfg.BatchLimit)
		userStore = memory.NewUserStore(cfg.BatchLimit)
		logger.Warn("MONGO_URI not set, using in-memory stores")
	}

	service := &appstats.Service{
		Bookings: bookings,
		Hotels: &resolve.Resolver[hotel.Summary]{
			Store:       hotelStore,
			Cache:       hotelCache,
			Key:         func(h hotel.Summary) string { return h.ID },
			Placeholder: hotel.Placeholder,
			Logger:      logger,
		},
		Customers: &resolve.Resolver[user.Summary]{
			Store:       userStore,
			Cache:       userCache,
			Key:         func(u user.Summary) string { return u.ID },
			Placeholder: user.Placeholder,
			Logger:      logger,
		},
		Logger: logger,
	}

	return &application{
		service:    service,
		hotelCache: hotelCache,
		userCache:  userCache,
		ready:      ready,
	}, cleanup, nil
}

// sweepCaches clears the entity caches on the configured interval. Resolution
// repopulates them lazily on the next request.
func (a *application) sweepCaches(ctx context.Context, ttl time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.hotelCache.Clear()
			a.userCache.Clear()
			logger.Debug("entity caches cleared", "ttl", ttl)
		}
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
