// Package knowledge guarda o léxico estático usado pela classificação local:
// ligas, times, jogadores e palavras-chave por esporte. As tabelas são dados
// imutáveis carregados na inicialização do processo.
package knowledge

import "github.com/radieske/sports-ledger/internal/classifier/sport"

// Kind separa os tipos de fato de uma tabela
type Kind int

const (
	// KindLeague: ligas e torneios, sinal mais forte
	KindLeague Kind = iota
	// KindEntity: nomes de times, clubes ou jogadores
	KindEntity
	// KindGeneric: substrings genéricas (só futebol), sujeitas a falso positivo
	KindGeneric
)

func (k Kind) String() string {
	switch k {
	case KindLeague:
		return "league"
	case KindEntity:
		return "entity"
	case KindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Table é uma coleção nomeada de termos em minúsculas para um único esporte
type Table struct {
	Name  string
	Sport sport.Category
	Kind  Kind
	Terms []string
}

// PassOrder é a ordem fixa de esportes nas passagens de ligas e entidades.
// Futebol não entra: é verificado depois de todas as passagens.
var PassOrder = []sport.Category{
	sport.Basketball,
	sport.AmericanFootball,
	sport.IceHockey,
	sport.Baseball,
	sport.Tennis,
	sport.Esports,
	sport.Handball,
	sport.Volleyball,
}

// Tables retorna todas as tabelas na ordem de declaração. Tabelas do mesmo
// esporte e tipo aparecem na ordem em que são concatenadas (doméstica antes
// de internacional).
func Tables() []Table {
	return []Table{
		basketballLeagues,
		nbaTeams,
		basketballInternational,
		americanFootballLeagues,
		nflTeams,
		iceHockeyLeagues,
		nhlTeams,
		iceHockeyInternational,
		baseballLeagues,
		mlbTeams,
		tennisTournaments,
		tennisPlayers,
		esportsTournaments,
		esportsTeams,
		handballLeagues,
		handballClubs,
		volleyballLeagues,
		volleyballClubs,
		footballClubs,
		footballKeywords,
	}
}

// Terms concatena os termos de todas as tabelas de um esporte e tipo
func Terms(s sport.Category, k Kind) []string {
	var out []string
	for _, t := range Tables() {
		if t.Sport == s && t.Kind == k {
			out = append(out, t.Terms...)
		}
	}
	return out
}

// Leagues retorna as palavras-chave de liga/torneio de um esporte
func Leagues(s sport.Category) []string { return Terms(s, KindLeague) }

// Entities retorna os nomes de times/jogadores de um esporte (listas mescladas)
func Entities(s sport.Category) []string { return Terms(s, KindEntity) }

// FootballClubs retorna os nomes de clubes de futebol
func FootballClubs() []string { return Entities(sport.Football) }

// FootballKeywords retorna as substrings genéricas de futebol
func FootballKeywords() []string { return Terms(sport.Football, KindGeneric) }
