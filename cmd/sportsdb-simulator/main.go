package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/sports-ledger/internal/shared/config"
	"github.com/radieske/sports-ledger/internal/shared/logger"
	"github.com/radieske/sports-ledger/internal/shared/metrics"
	simulator "github.com/radieske/sports-ledger/internal/sportsdb-simulator"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sportsdb_simulator_requests_total",
		Help: "requisições searchteams por resultado",
	}, []string{"result"})
	prometheus.MustRegister(requests)

	sim := simulator.NewServer(log, simulator.DefaultCatalog, cfg.SimulatorLatency, cfg.SimulatorFailureRate)
	sim.OnRequest = func(result string) { requests.WithLabelValues(result).Inc() }

	// Servidor de métricas em goroutine
	metrics.StartMetricsServer(cfg.MetricsPort, log)

	// Servidor público (searchteams)
	publicAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	log.Info("sportsdb simulator (public) running",
		zap.String("addr", publicAddr),
		zap.String("base_url", "http://localhost"+publicAddr+simulator.BasePath),
		zap.Duration("latency", cfg.SimulatorLatency),
		zap.Float64("failure_rate", cfg.SimulatorFailureRate),
		zap.Int("teams", len(simulator.DefaultCatalog)),
	)
	srv := &http.Server{
		Addr:              publicAddr,
		Handler:           sim.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("public server error", zap.Error(err))
	}
}
