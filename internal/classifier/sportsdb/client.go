// Package sportsdb é o cliente do provedor externo de busca de times
// (TheSportsDB). A consulta de esporte por time nunca devolve erro: qualquer
// falha do provedor vira "sem sinal" e é memorizada como entrada negativa.
package sportsdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/sports-ledger/internal/classifier/lookupcache"
	"github.com/radieske/sports-ledger/internal/classifier/sport"
)

const (
	DefaultBaseURL       = "https://www.thesportsdb.com/api/v1/json"
	DefaultAPIKey        = "3" // chave do plano gratuito
	DefaultLookupTimeout = 3 * time.Second
	DefaultSearchTimeout = 5 * time.Second

	minSearchQueryLen = 2
)

// Resultados da consulta, usados nas métricas
const (
	OutcomeCacheHit = "cache_hit"
	OutcomeMatch    = "match"
	OutcomeNoMatch  = "no_match"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

var ErrUnexpectedStatus = errors.New("sportsdb: unexpected http status")

// Client consulta o provedor. Cache é exclusivo do cliente: nenhum outro
// componente lê ou grava nele.
type Client struct {
	BaseURL       string
	APIKey        string
	HTTP          *http.Client
	Cache         lookupcache.Cache
	Log           *zap.Logger
	LookupTimeout time.Duration
	SearchTimeout time.Duration

	OnLookup func(outcome string) // métricas
}

// New cria o cliente com timeouts padrão. Cache nil usa um cache em memória.
func New(baseURL, apiKey string, cache lookupcache.Cache, log *zap.Logger) *Client {
	if cache == nil {
		cache = lookupcache.NewMemory()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		APIKey:        apiKey,
		HTTP:          &http.Client{},
		Cache:         cache,
		Log:           log,
		LookupTimeout: DefaultLookupTimeout,
		SearchTimeout: DefaultSearchTimeout,
	}
}

// LookupTeamSport devolve o esporte do primeiro time encontrado para o nome.
// ok=false quando não há sinal (falha, timeout ou nenhum candidato).
// Cancelamento do contexto de quem chama não é memorizado.
func (c *Client) LookupTeamSport(ctx context.Context, teamName string) (sport.Category, bool) {
	key := lookupcache.NormalizeKey(teamName)
	if key == "" {
		return sport.Other, false
	}

	e, found, err := c.Cache.Get(ctx, key)
	if err != nil {
		// cache indisponível não impede a consulta
		c.Log.Warn("lookup cache get failed", zap.String("team", key), zap.Error(err))
	} else if found {
		c.observe(OutcomeCacheHit)
		return entryResult(e)
	}

	lctx, cancel := context.WithTimeout(ctx, c.LookupTimeout)
	defer cancel()

	entry := lookupcache.Negative
	teams, err := c.searchTeams(lctx, strings.TrimSpace(teamName))
	switch {
	case err != nil && ctx.Err() != nil:
		// quem chamou desistiu: não é falha do provedor, nada vai para o cache
		c.Log.Debug("sportsdb lookup canceled by caller", zap.String("team", teamName), zap.Error(err))
		c.observe(OutcomeCanceled)
		return sport.Other, false
	case err != nil:
		c.Log.Warn("sportsdb lookup failed", zap.String("team", teamName), zap.Error(err))
		c.observe(OutcomeError)
	case len(teams) == 0 || teams[0] == nil:
		c.observe(OutcomeNoMatch)
	default:
		entry = lookupcache.Hit(MapLabel(teams[0].Sport))
		c.observe(OutcomeMatch)
	}

	if err := c.Cache.Set(ctx, key, entry); err != nil {
		c.Log.Warn("lookup cache set failed", zap.String("team", key), zap.Error(err))
	}
	return entryResult(entry)
}

// SearchTeams busca times pelo nome, opcionalmente filtrando pelo esporte do
// provedor (comparação em minúsculas). Consultas com menos de 2 caracteres
// retornam vazio sem ir à rede.
func (c *Client) SearchTeams(ctx context.Context, query, sportFilter string) ([]TeamResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < minSearchQueryLen {
		return []TeamResult{}, nil
	}

	sctx, cancel := context.WithTimeout(ctx, c.SearchTimeout)
	defer cancel()

	teams, err := c.searchTeams(sctx, query)
	if err != nil {
		return nil, err
	}

	filter := strings.ToLower(strings.TrimSpace(sportFilter))
	out := make([]TeamResult, 0, len(teams))
	for _, t := range teams {
		if t == nil {
			continue
		}
		teamSport := strings.ToLower(t.Sport)
		if filter != "" && teamSport != filter {
			continue
		}
		out = append(out, TeamResult{
			TeamID:    t.ID,
			TeamName:  t.Name,
			TeamBadge: t.badge(),
			Sport:     teamSport,
			League:    t.League,
			Country:   t.Country,
		})
	}
	return out, nil
}

func (c *Client) searchTeams(ctx context.Context, name string) ([]*Team, error) {
	u := fmt.Sprintf("%s/%s/searchteams.php?t=%s", c.BaseURL, url.PathEscape(c.APIKey), url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var out searchTeamsResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode searchteams: %w", err)
	}
	return out.Teams, nil
}

func (c *Client) observe(outcome string) {
	if c.OnLookup != nil {
		c.OnLookup(outcome)
	}
}

func entryResult(e lookupcache.Entry) (sport.Category, bool) {
	if !e.Matched {
		return sport.Other, false
	}
	return e.Sport, true
}
