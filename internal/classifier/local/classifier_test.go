package local

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/radieske/sports-ledger/internal/classifier/knowledge"
	"github.com/radieske/sports-ledger/internal/classifier/sport"
)

type ClassifierTestSuite struct {
	suite.Suite
}

func TestClassifierSuite(t *testing.T) {
	suite.Run(t, new(ClassifierTestSuite))
}

func (s *ClassifierTestSuite) TestClassify() {
	testCases := []struct {
		game        string
		expected    sport.Category
		pass        Pass
		description string
	}{
		{"", sport.Other, PassEmpty, "empty input"},
		{"   ", sport.Other, PassDefault, "whitespace only"},
		{"1234 5678", sport.Other, PassDefault, "no letters"},
		{"!!!", sport.Other, PassDefault, "punctuation"},
		{"NBA clash: Bruins vs Rockets", sport.Basketball, PassLeague, "league keyword beats team names"},
		{"Lakers Bruins", sport.Basketball, PassEntity, "earlier sport wins the entity pass"},
		{"Djokovic v Alcaraz", sport.Tennis, PassEntity, "tennis player table"},
		{"Nadal vs Federer", sport.Tennis, PassEntity, "tennis players"},
		{"Smith v Jones", sport.Tennis, PassTennisPattern, "short separator pattern"},
		{"Smith - Jones", sport.Tennis, PassTennisPattern, "dash separator pattern"},
		{"Random Event Name", sport.Other, PassDefault, "nothing matches"},
		{"Wimbledon final", sport.Tennis, PassLeague, "tennis tournament"},
		{"KHL: Jokerit vs SKA", sport.IceHockey, PassLeague, "hockey league"},
		{"Bruins - Canadiens", sport.IceHockey, PassEntity, "nhl teams"},
		{"Yankees vs Red Sox", sport.Baseball, PassEntity, "mlb teams"},
		{"Patriots - Chiefs", sport.AmericanFootball, PassEntity, "nfl teams"},
		{"Jets vs Dolphins", sport.AmericanFootball, PassEntity, "nfl checked before nhl"},
		{"Navi vs Astralis", sport.Esports, PassEntity, "esports teams"},
		{"Kiel - Flensburg", sport.Handball, PassEntity, "handball clubs"},
		{"Perugia - Modena", sport.Volleyball, PassEntity, "volleyball clubs"},
		{"Real Madrid", sport.Basketball, PassEntity, "euroleague list runs before football clubs"},
		{"Porto", sport.Handball, PassEntity, "handball list runs before football clubs"},
		{"Chelsea - Arsenal", sport.Football, PassFootballClub, "football clubs"},
		{"Galatasaray vs Besiktas", sport.Football, PassFootballClub, "other football clubs"},
		{"Some FC vs Other Team", sport.Football, PassFootballKeyword, "generic football keyword"},
		{"Celtics - Heat", sport.Esports, PassLeague, "substring 'ti' inside 'celtics' is kept as is"},
		{"Aa - Bb", sport.Tennis, PassTennisPattern, "three words is the lower bound"},
		{"Aa Bb - Cc Dd Ee Ff Gg", sport.Tennis, PassTennisPattern, "eight words is the upper bound"},
		{"Aa Bb - Cc Dd Ee Ff Gg Hh", sport.Other, PassDefault, "nine words is too long for tennis"},
		{"Qqq Zzz", sport.Other, PassDefault, "no separator"},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			m := Explain(tc.game)
			s.Equal(tc.expected, m.Sport)
			s.Equal(tc.pass, m.Pass)
			s.Equal(tc.expected, Classify(tc.game))
		})
	}
}

func (s *ClassifierTestSuite) TestExplainReportsMatchedTerm() {
	m := Explain("NBA clash: Bruins vs Rockets")
	s.Equal("nba", m.Term)

	m = Explain("Djokovic v Alcaraz")
	s.Equal("djokovic", m.Term)

	m = Explain("Smith v Jones")
	s.Equal(" v ", m.Term)
}

func (s *ClassifierTestSuite) TestTotality() {
	inputs := []string{
		"", " ", "\t\n", "0", "-", " - ", " v ", "@@@", "ñandú", "日本 - 中国",
		"a", "A vs B vs C vs D vs E vs F", "\x00\x01",
	}
	for _, in := range inputs {
		got := Classify(in)
		s.True(got.IsValid(), "input %q gave %q", in, got)
	}
}

func (s *ClassifierTestSuite) TestDeterministic() {
	for i := 0; i < 3; i++ {
		s.Equal(sport.Basketball, Classify("Lakers Bruins"))
		s.Equal(sport.Tennis, Classify("Smith v Jones"))
	}
}

// cada nome de time de cada tabela de entidade deve classificar como o seu
// esporte ou como um esporte que roda antes na ordem (colisões conhecidas)
func TestEveryEntityClassifiesNoLaterThanItsSport(t *testing.T) {
	rank := make(map[sport.Category]int, len(knowledge.PassOrder))
	for i, sp := range knowledge.PassOrder {
		rank[sp] = i
	}
	for _, sp := range knowledge.PassOrder {
		for _, term := range knowledge.Entities(sp) {
			m := Explain(term)
			if m.Pass == PassLeague {
				continue
			}
			assert.Equal(t, PassEntity, m.Pass, term)
			assert.LessOrEqual(t, rank[m.Sport], rank[sp], "term %q resolved to %s", term, m.Sport)
		}
	}
}

func TestLeagueKeywordsAlwaysClassifyAsLeague(t *testing.T) {
	for _, sp := range knowledge.PassOrder {
		for _, term := range knowledge.Leagues(sp) {
			m := Explain(term)
			assert.Equal(t, PassLeague, m.Pass, term)
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Classify("Manchester United v Liverpool")
	}
}
