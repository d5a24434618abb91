// Package local implementa a classificação de esporte sem rede, baseada nas
// tabelas estáticas do pacote knowledge. O casamento é por substring no texto
// em minúsculas, sem tokenização nem fronteira de palavra.
package local

import (
	"strings"

	"github.com/radieske/sports-ledger/internal/classifier/knowledge"
	"github.com/radieske/sports-ledger/internal/classifier/sport"
)

// Pass identifica qual etapa da classificação produziu o resultado
type Pass string

const (
	PassEmpty           Pass = "empty"
	PassLeague          Pass = "league"
	PassEntity          Pass = "entity"
	PassFootballClub    Pass = "football_club"
	PassFootballKeyword Pass = "football_keyword"
	PassTennisPattern   Pass = "tennis_pattern"
	PassDefault         Pass = "default"
)

// Match descreve o resultado e o termo que o causou
type Match struct {
	Sport sport.Category `json:"sport"`
	Pass  Pass           `json:"pass"`
	Term  string         `json:"term,omitempty"`
}

type rule struct {
	sport sport.Category
	terms []string
}

// regras montadas uma única vez a partir das tabelas
var (
	leagueRules      = buildRules(knowledge.Leagues)
	entityRules      = buildRules(knowledge.Entities)
	footballClubs    = knowledge.FootballClubs()
	footballKeywords = knowledge.FootballKeywords()
)

// separadores e faixa de palavras da heurística de tênis
var tennisSeparators = []string{" v ", " vs ", " - "}

const (
	tennisMinWords = 3
	tennisMaxWords = 8
)

func buildRules(terms func(sport.Category) []string) []rule {
	out := make([]rule, 0, len(knowledge.PassOrder))
	for _, s := range knowledge.PassOrder {
		out = append(out, rule{sport: s, terms: terms(s)})
	}
	return out
}

// Classify retorna o esporte de uma descrição de jogo. Total e determinística:
// sempre devolve uma categoria, Other quando nada casa.
func Classify(game string) sport.Category {
	return Explain(game).Sport
}

// Explain executa as mesmas passagens de Classify e informa qual delas decidiu.
// Primeira correspondência vence, sem backtracking:
//  1. ligas/torneios, na ordem de knowledge.PassOrder
//  2. times/jogadores, mesma ordem
//  3. clubes de futebol
//  4. substrings genéricas de futebol
//  5. padrão "A v B" curto => tênis
//  6. Other
func Explain(game string) Match {
	if game == "" {
		return Match{Sport: sport.Other, Pass: PassEmpty}
	}
	g := strings.ToLower(game)

	if s, term, ok := scan(g, leagueRules); ok {
		return Match{Sport: s, Pass: PassLeague, Term: term}
	}
	if s, term, ok := scan(g, entityRules); ok {
		return Match{Sport: s, Pass: PassEntity, Term: term}
	}
	if term, ok := firstContained(g, footballClubs); ok {
		return Match{Sport: sport.Football, Pass: PassFootballClub, Term: term}
	}
	if term, ok := firstContained(g, footballKeywords); ok {
		return Match{Sport: sport.Football, Pass: PassFootballKeyword, Term: term}
	}
	if sep, ok := firstContained(g, tennisSeparators); ok {
		if n := len(strings.Fields(g)); n >= tennisMinWords && n <= tennisMaxWords {
			return Match{Sport: sport.Tennis, Pass: PassTennisPattern, Term: sep}
		}
	}
	return Match{Sport: sport.Other, Pass: PassDefault}
}

func scan(g string, rules []rule) (sport.Category, string, bool) {
	for _, r := range rules {
		if term, ok := firstContained(g, r.terms); ok {
			return r.sport, term, true
		}
	}
	return sport.Other, "", false
}

func firstContained(g string, terms []string) (string, bool) {
	for _, t := range terms {
		if strings.Contains(g, t) {
			return t, true
		}
	}
	return "", false
}
