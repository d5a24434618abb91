package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/sports-ledger/internal/bet-import/consumer"
	"github.com/radieske/sports-ledger/internal/bet-import/publisher"
	"github.com/radieske/sports-ledger/internal/bet-import/repository"
	"github.com/radieske/sports-ledger/internal/classifier"
	"github.com/radieske/sports-ledger/internal/classifier/lookupcache"
	"github.com/radieske/sports-ledger/internal/classifier/sport"
	"github.com/radieske/sports-ledger/internal/classifier/sportsdb"
	sharedcache "github.com/radieske/sports-ledger/internal/shared/cache"
	"github.com/radieske/sports-ledger/internal/shared/config"
	"github.com/radieske/sports-ledger/internal/shared/db"
	"github.com/radieske/sports-ledger/internal/shared/kafka"
	"github.com/radieske/sports-ledger/internal/shared/logger"
	"github.com/radieske/sports-ledger/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Inicializa dependências: Postgres e, se configurado, Redis para o cache de consultas
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	checks := []metrics.HealthCheck{{Name: "postgres", Check: pg.PingContext}}

	var lookups lookupcache.Cache = lookupcache.NewMemory()
	if cfg.LookupCache == config.LookupCacheRedis {
		redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatal("redis connect", zap.Error(err))
		}
		defer redisClient.Close()
		lc := lookupcache.NewRedis(redisClient)
		lc.NegativeTTL = cfg.LookupNegativeTTL
		lookups = lc
		checks = append(checks, metrics.HealthCheck{Name: "redis", Check: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}})
	}

	// Tópicos em ambiente local/dev
	if cfg.Env == "local" || cfg.Env == "dev" {
		ctrlCtx, ctrlCancel := context.WithTimeout(context.Background(), 10*time.Second)
		brokers := kafka.Brokers(cfg.KafkaBrokers)
		if len(brokers) > 0 {
			if err := publisher.EnsureTopics(ctrlCtx, brokers[0], log,
				cfg.TopicBetImported, cfg.TopicBetClassified, cfg.TopicBetImportedDLQ); err != nil {
				log.Warn("ensure kafka topics", zap.Error(err))
			}
		}
		ctrlCancel()
	}

	// Kafka: consumer bet_imported, producer bet_classified e DLQ opcional
	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicBetImported, "bet-import-classifier")
	defer reader.Close()

	classifiedWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetClassified)
	defer classifiedWriter.Close()

	var dlq consumer.DeadLetter
	if cfg.TopicBetImportedDLQ != "" {
		dlqWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetImportedDLQ)
		defer dlqWriter.Close()
		dlq = publisher.NewDLQ(dlqWriter)
	}

	// Métricas Prometheus
	cm := metrics.NewClassification(prometheus.DefaultRegisterer)
	im := metrics.NewImport(prometheus.DefaultRegisterer)

	client := sportsdb.New(cfg.SportsDBBaseURL, cfg.SportsDBAPIKey, lookups, logger.Component(log, "sportsdb"))
	client.LookupTimeout = cfg.SportsDBLookupTimeout
	client.OnLookup = cm.ObserveLookup

	cls := classifier.New(client, logger.Component(log, "classifier"))
	cls.OnClassified = func(s sport.Category, source string) { cm.ObserveClassified(s.String(), source) }

	proc := &consumer.Processor{
		Log:        log,
		Reader:     reader,
		Classifier: cls,
		Repo:       repository.NewPostgresRepo(pg),
		Publisher:  publisher.NewKafkaPublisher(classifiedWriter, log),
		DLQ:        dlq,
		OnConsumed: im.ObserveConsumed,
		OnPersist:  im.ObservePersisted,
		OnError:    im.ObserveError,
	}

	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, log, checks...)
	defer metricsSrv.Close()

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("bet-import-classifier-worker started",
		zap.String("consume", cfg.TopicBetImported),
		zap.String("publish", cfg.TopicBetClassified),
	)
	if err := proc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("processor stopped with error", zap.Error(err))
	}
	log.Info("bet-import-classifier-worker stopped")
}
