// Package simulator imita o endpoint searchteams.php do provedor de times para
// desenvolvimento local, com latência e falhas injetáveis.
package simulator

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/sports-ledger/internal/classifier/sportsdb"
)

// Resultados reportados em OnRequest
const (
	ResultMatch   = "match"
	ResultEmpty   = "empty"
	ResultFailure = "failure"
)

// BasePath é o prefixo equivalente a sportsdb.DefaultBaseURL
const BasePath = "/api/v1/json"

type Server struct {
	Log         *zap.Logger
	Catalog     []sportsdb.Team
	Latency     time.Duration // atraso aplicado a toda resposta
	FailureRate float64       // fração das requisições respondidas com 500

	OnRequest func(result string) // métricas

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewServer(log *zap.Logger, catalog []sportsdb.Team, latency time.Duration, failureRate float64) *Server {
	return &Server{
		Log:         log,
		Catalog:     catalog,
		Latency:     latency,
		FailureRate: failureRate,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Router expõe GET {BasePath}/{key}/searchteams.php?t=
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get(BasePath+"/{key}/searchteams.php", s.searchTeams)
	return r
}

func (s *Server) searchTeams(w http.ResponseWriter, r *http.Request) {
	if s.Latency > 0 {
		select {
		case <-time.After(s.Latency):
		case <-r.Context().Done():
			return
		}
	}

	if s.shouldFail() {
		s.observe(ResultFailure)
		http.Error(w, "simulated failure", http.StatusInternalServerError)
		return
	}

	teams := s.match(r.URL.Query().Get("t"))
	result := ResultMatch
	if len(teams) == 0 {
		// o provedor real devolve "teams": null quando não encontra nada
		teams = nil
		result = ResultEmpty
	}
	s.observe(result)
	s.Log.Debug("searchteams",
		zap.String("key", chi.URLParam(r, "key")),
		zap.String("t", r.URL.Query().Get("t")),
		zap.Int("results", len(teams)),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]sportsdb.Team{"teams": teams})
}

// match devolve os times cujo nome contém o termo, sem diferenciar maiúsculas
func (s *Server) match(term string) []sportsdb.Team {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return nil
	}
	var out []sportsdb.Team
	for _, team := range s.Catalog {
		if strings.Contains(strings.ToLower(team.Name), t) {
			out = append(out, team)
		}
	}
	return out
}

func (s *Server) shouldFail() bool {
	if s.FailureRate <= 0 {
		return false
	}
	if s.FailureRate >= 1 {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64() < s.FailureRate
}

func (s *Server) observe(result string) {
	if s.OnRequest != nil {
		s.OnRequest(result)
	}
}
