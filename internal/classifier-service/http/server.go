package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/radieske/sports-ledger/internal/classifier"
	"github.com/radieske/sports-ledger/internal/classifier-service/cache"
	"github.com/radieske/sports-ledger/internal/classifier-service/dto"
	"github.com/radieske/sports-ledger/internal/classifier/local"
	"github.com/radieske/sports-ledger/internal/classifier/sportsdb"
)

const (
	minTeamQueryLen = 2

	// DefaultBatchTimeout é o prazo de uma chamada de lote; ao estourar, o
	// restante do lote é classificado só com as regras locais
	DefaultBatchTimeout = 60 * time.Second
)

// TeamSearcher é a busca de times do provedor (sportsdb.Client)
type TeamSearcher interface {
	SearchTeams(ctx context.Context, query, sportFilter string) ([]sportsdb.TeamResult, error)
}

// API expõe a classificação de esporte e a busca de times
// Cache é opcional: sem ele toda busca vai ao provedor
type API struct {
	Classifier *classifier.Classifier
	Teams      TeamSearcher
	Cache      *cache.Cache
	Log        *zap.Logger

	BatchTimeout time.Duration // 0 usa DefaultBatchTimeout
}

// Router retorna o roteador HTTP com os endpoints REST
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/v1/classify", a.classify)             // Classifica uma descrição
	r.Post("/v1/classify/batch", a.classifyBatch) // Classifica várias, na ordem recebida
	r.Get("/v1/classify/local", a.classifyLocal)  // Somente regras locais, com a passagem que decidiu
	r.Get("/v1/teams/search", a.searchTeams)      // Busca de times no provedor
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}

func (a *API) classify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("game") {
		writeError(w, http.StatusBadRequest, "game is required")
		return
	}
	game := q.Get("game")
	writeJSON(w, http.StatusOK, toDTO(game, a.Classifier.ClassifyDetailed(r.Context(), game)))
}

func (a *API) classifyBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, dto.MaxBatchBodyBytes)
	defer r.Body.Close()

	var req dto.BatchClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if len(req.Games) > dto.MaxBatchSize {
		writeError(w, http.StatusRequestEntityTooLarge, "too many games in batch")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), a.batchTimeout())
	defer cancel()

	// sequencial: cada descrição termina antes da próxima começar
	out := dto.BatchClassifyResponse{Results: make([]dto.Classification, 0, len(req.Games))}
	for _, game := range req.Games {
		out.Results = append(out.Results, toDTO(game, a.Classifier.ClassifyDetailed(ctx, game)))
	}
	if ctx.Err() != nil {
		a.Log.Warn("batch deadline reached, remaining games classified locally",
			zap.Int("games", len(req.Games)), zap.Error(ctx.Err()))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) classifyLocal(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("game") {
		writeError(w, http.StatusBadRequest, "game is required")
		return
	}
	game := q.Get("game")
	m := local.Explain(game)
	writeJSON(w, http.StatusOK, dto.Classification{
		Game:   game,
		Sport:  m.Sport.String(),
		Source: classifier.SourceLocal,
		Pass:   string(m.Pass),
		Term:   m.Term,
	})
}

// searchTeams retorna times do provedor, preferencialmente do cache.
// Falha do provedor vira lista vazia e não é cacheada.
func (a *API) searchTeams(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	sportFilter := strings.TrimSpace(r.URL.Query().Get("sport"))
	resp := dto.TeamSearchResponse{Query: query, Sport: sportFilter, Teams: []dto.Team{}}

	if len(query) < minTeamQueryLen {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	if a.Cache != nil {
		var fromCache []dto.Team
		ok, err := a.Cache.GetTeams(r.Context(), query, sportFilter, &fromCache)
		if err != nil {
			a.Log.Warn("team search cache get failed", zap.String("query", query), zap.Error(err))
		} else if ok {
			resp.Teams = fromCache
			writeJSON(w, http.StatusOK, resp)
			return
		}
	}

	teams, err := a.Teams.SearchTeams(r.Context(), query, sportFilter)
	if err != nil {
		a.Log.Warn("team search failed", zap.String("query", query), zap.Error(err))
		writeJSON(w, http.StatusOK, resp)
		return
	}

	for _, t := range teams {
		resp.Teams = append(resp.Teams, dto.Team{
			TeamID:    t.TeamID,
			TeamName:  t.TeamName,
			TeamBadge: t.TeamBadge,
			Sport:     t.Sport,
			League:    t.League,
			Country:   t.Country,
		})
	}

	if a.Cache != nil {
		if err := a.Cache.SetTeams(r.Context(), query, sportFilter, resp.Teams); err != nil {
			a.Log.Warn("team search cache set failed", zap.String("query", query), zap.Error(err))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) batchTimeout() time.Duration {
	if a.BatchTimeout > 0 {
		return a.BatchTimeout
	}
	return DefaultBatchTimeout
}

func toDTO(game string, res classifier.Result) dto.Classification {
	out := dto.Classification{
		Game:   game,
		Sport:  res.Sport.String(),
		Source: res.Source,
		Team:   res.Team,
	}
	if res.Local != nil {
		out.Pass = string(res.Local.Pass)
		out.Term = res.Local.Term
	}
	return out
}
