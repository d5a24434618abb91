package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/sports-ledger/internal/classifier"
	svccache "github.com/radieske/sports-ledger/internal/classifier-service/cache"
	httpapi "github.com/radieske/sports-ledger/internal/classifier-service/http"
	"github.com/radieske/sports-ledger/internal/classifier/lookupcache"
	"github.com/radieske/sports-ledger/internal/classifier/sport"
	"github.com/radieske/sports-ledger/internal/classifier/sportsdb"
	"github.com/radieske/sports-ledger/internal/shared/cache"
	"github.com/radieske/sports-ledger/internal/shared/config"
	"github.com/radieske/sports-ledger/internal/shared/logger"
	"github.com/radieske/sports-ledger/internal/shared/metrics"
)

func main() {
	// carrega config
	cfg := config.Load()

	// inicia logger
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service",
		zap.String("sportsdb", cfg.SportsDBBaseURL),
		zap.String("lookup_cache", cfg.LookupCache),
	)

	// Redis: cache da busca de times e, opcionalmente, cache de consultas por time
	redisClient, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redisClient.Close()
	log.Info("redis connected")

	// Métricas Prometheus
	m := metrics.NewClassification(prometheus.DefaultRegisterer)

	client := sportsdb.New(cfg.SportsDBBaseURL, cfg.SportsDBAPIKey, lookupCache(cfg, redisClient), logger.Component(log, "sportsdb"))
	client.LookupTimeout = cfg.SportsDBLookupTimeout
	client.SearchTimeout = cfg.SportsDBSearchTimeout
	client.OnLookup = m.ObserveLookup

	cls := classifier.New(client, logger.Component(log, "classifier"))
	cls.OnClassified = func(s sport.Category, source string) { m.ObserveClassified(s.String(), source) }

	api := &httpapi.API{
		Classifier:   cls,
		Teams:        client,
		Cache:        svccache.New(redisClient, cfg.TeamSearchCacheTTL),
		Log:          logger.Component(log, "http"),
		BatchTimeout: cfg.ClassifyBatchTimeout,
	}

	// Servidor de métricas e health
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, log,
		metrics.HealthCheck{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }},
	)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		log.Info("http listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	_ = metricsSrv.Shutdown(shutdownCtx)
}

// lookupCache escolhe o backend do cache de consultas por time
func lookupCache(cfg config.Config, rdb *redis.Client) lookupcache.Cache {
	if cfg.LookupCache == config.LookupCacheRedis {
		lc := lookupcache.NewRedis(rdb)
		lc.NegativeTTL = cfg.LookupNegativeTTL
		return lc
	}
	return lookupcache.NewMemory()
}
