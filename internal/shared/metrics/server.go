package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type HealthFunc func(ctx context.Context) error

// HealthCheck é uma dependência verificada em /healthz
type HealthCheck struct {
	Name  string
	Check HealthFunc
}

const healthTimeout = 500 * time.Millisecond

// NewMux monta /metrics (registry padrão) e /healthz. O health falha na
// primeira dependência indisponível.
func NewMux(checks ...HealthCheck) *http.ServeMux {
	return newMux(promhttp.Handler(), checks)
}

// NewMuxFor é igual a NewMux mas expõe um registry específico (usado em testes)
func NewMuxFor(g prometheus.Gatherer, checks ...HealthCheck) *http.ServeMux {
	return newMux(promhttp.HandlerFor(g, promhttp.HandlerOpts{}), checks)
}

func newMux(metricsHandler http.Handler, checks []HealthCheck) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metricsHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		for _, c := range checks {
			if err := c.Check(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(fmt.Sprintf("%s unhealthy: %v", c.Name, err)))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// StartMetricsServer sobe um servidor HTTP leve só pra /metrics e /healthz
// em uma goroutine. O chamador faz Shutdown no encerramento.
func StartMetricsServer(port string, log *zap.Logger, checks ...HealthCheck) *http.Server {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           NewMux(checks...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("metrics/health listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server failed", zap.Error(err))
		}
	}()

	return srv
}
