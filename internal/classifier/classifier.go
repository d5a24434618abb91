// Package classifier é o ponto de entrada da detecção de esporte usada na
// importação de apostas: tenta o provedor remoto para cada time extraído da
// descrição do jogo e cai para a classificação local quando não há sinal.
package classifier

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/radieske/sports-ledger/internal/classifier/local"
	"github.com/radieske/sports-ledger/internal/classifier/sport"
)

// Origem do resultado
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// separadores de times, em ordem de prioridade
var teamSeparators = []string{" - ", " vs ", " v ", " @ "}

// TeamLookup é a consulta remota de um time (implementada por sportsdb.Client).
// ok=false significa sem sinal; nunca retorna erro.
type TeamLookup interface {
	LookupTeamSport(ctx context.Context, teamName string) (sport.Category, bool)
}

// Result é a classificação com a informação de onde ela veio
type Result struct {
	Sport  sport.Category `json:"sport"`
	Source string         `json:"source"`
	Team   string         `json:"team,omitempty"`  // time que resolveu via remoto
	Local  *local.Match   `json:"local,omitempty"` // passagem local, quando usada
}

// Classifier orquestra consulta remota e fallback local
type Classifier struct {
	Lookup TeamLookup // nil => somente local
	Log    *zap.Logger

	OnClassified func(s sport.Category, source string) // métricas
}

func New(lookup TeamLookup, log *zap.Logger) *Classifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Classifier{Lookup: lookup, Log: log}
}

// Classify devolve o esporte de uma descrição de jogo. Nunca falha.
func (c *Classifier) Classify(ctx context.Context, game string) sport.Category {
	return c.ClassifyDetailed(ctx, game).Sport
}

// ClassifyDetailed faz o mesmo que Classify e informa a origem do resultado.
// Times são consultados em ordem de extração; o primeiro resultado remoto
// diferente de Other encerra a busca.
func (c *Classifier) ClassifyDetailed(ctx context.Context, game string) Result {
	if game == "" {
		m := local.Explain(game)
		return c.done(Result{Sport: m.Sport, Source: SourceLocal, Local: &m})
	}

	if c.Lookup != nil {
		for _, team := range ExtractTeams(game) {
			s, ok := c.Lookup.LookupTeamSport(ctx, team)
			if ok && s.Confident() {
				c.Log.Debug("sport resolved remotely",
					zap.String("game", game),
					zap.String("team", team),
					zap.String("sport", s.String()),
				)
				return c.done(Result{Sport: s, Source: SourceRemote, Team: team})
			}
		}
	}

	m := local.Explain(game)
	return c.done(Result{Sport: m.Sport, Source: SourceLocal, Local: &m})
}

func (c *Classifier) done(r Result) Result {
	if c.OnClassified != nil {
		c.OnClassified(r.Sport, r.Source)
	}
	return r
}

// ExtractTeams separa a descrição em exatamente dois times usando o primeiro
// separador (em ordem de prioridade) que produza duas partes não vazias.
// Retorna nil quando nenhum separador serve.
func ExtractTeams(game string) []string {
	g := strings.TrimSpace(game)
	for _, sep := range teamSeparators {
		if !strings.Contains(g, sep) {
			continue
		}
		parts := strings.Split(g, sep)
		if len(parts) != 2 {
			continue
		}
		a, b := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if a != "" && b != "" {
			return []string{a, b}
		}
	}
	return nil
}
