package simulator

import "github.com/radieske/sports-ledger/internal/classifier/sportsdb"

// DefaultCatalog é o conjunto fixo de times servido pelo simulador.
// Os rótulos de esporte seguem o vocabulário do provedor real.
var DefaultCatalog = []sportsdb.Team{
	{ID: "133604", Name: "Arsenal", Sport: "Soccer", League: "English Premier League", Country: "England", TeamBadge: "https://r2.thesportsdb.com/images/media/team/badge/arsenal.png"},
	{ID: "133612", Name: "Manchester United", Sport: "Soccer", League: "English Premier League", Country: "England"},
	{ID: "134301", Name: "Flamengo", Sport: "Soccer", League: "Brazilian Serie A", Country: "Brazil"},
	{ID: "134288", Name: "Palmeiras", Sport: "Soccer", League: "Brazilian Serie A", Country: "Brazil"},
	{ID: "134867", Name: "Los Angeles Lakers", Sport: "Basketball", League: "NBA", Country: "United States"},
	{ID: "134860", Name: "Boston Celtics", Sport: "Basketball", League: "NBA", Country: "United States"},
	{ID: "134830", Name: "Boston Bruins", Sport: "Ice Hockey", League: "NHL", Country: "United States"},
	{ID: "134837", Name: "Montreal Canadiens", Sport: "Ice Hockey", League: "NHL", Country: "Canada"},
	{ID: "134934", Name: "Kansas City Chiefs", Sport: "American Football", League: "NFL", Country: "United States"},
	{ID: "135269", Name: "New York Yankees", Sport: "Baseball", League: "MLB", Country: "United States"},
	{ID: "136167", Name: "THW Kiel", Sport: "Handball", League: "Handball-Bundesliga", Country: "Germany"},
	{ID: "140721", Name: "Sir Safety Perugia", Sport: "Volleyball", League: "Italian SuperLega", Country: "Italy"},
	{ID: "144421", Name: "Fnatic", Sport: "Esports", League: "League of Legends EMEA Championship", Country: "England"},
	{ID: "135810", Name: "Leinster", Sport: "Rugby", League: "United Rugby Championship", Country: "Ireland"},
	{ID: "137001", Name: "Mumbai Indians", Sport: "Cricket", League: "Indian Premier League", Country: "India"},
}
