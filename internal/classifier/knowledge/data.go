package knowledge

import "github.com/radieske/sports-ledger/internal/classifier/sport"

// Basquete

var basketballLeagues = Table{
	Name:  "basketball-leagues",
	Sport: sport.Basketball,
	Kind:  KindLeague,
	Terms: []string{"nba", "euroleague", "ncaa basketball", "march madness"},
}

// NBA: todas as 30 franquias e apelidos comuns
var nbaTeams = Table{
	Name:  "nba-teams",
	Sport: sport.Basketball,
	Kind:  KindEntity,
	Terms: []string{
		// Atlantic
		"celtics", "nets", "76ers", "sixers", "knicks", "raptors",
		// Central
		"bulls", "cavaliers", "cavs", "pistons", "pacers", "bucks",
		// Southeast
		"hawks", "heat", "hornets", "magic", "wizards",
		// Northwest
		"nuggets", "timberwolves", "thunder", "trail blazers", "blazers", "jazz",
		// Pacific
		"warriors", "clippers", "lakers", "suns", "kings",
		// Southwest
		"mavericks", "mavs", "rockets", "grizzlies", "pelicans", "spurs",
	},
}

var basketballInternational = Table{
	Name:  "basketball-international",
	Sport: sport.Basketball,
	Kind:  KindEntity,
	Terms: []string{
		"real madrid", "barcelona", "barca", "olympiacos", "panathinaikos",
		"fenerbahce", "fener", "cska moscow", "cska", "zalgiris", "kaunas",
		"maccabi", "tel aviv", "efes", "anadolu efes", "bayern munich",
		"olimpia milano", "armani", "virtus bologna", "virtus", "asvel",
		"monaco", "baskonia", "vitoria", "partizan", "red star", "crvena zvezda",
	},
}

// Futebol americano

var americanFootballLeagues = Table{
	Name:  "american-football-leagues",
	Sport: sport.AmericanFootball,
	Kind:  KindLeague,
	Terms: []string{"nfl", "ncaa football", "college football", "super bowl"},
}

var nflTeams = Table{
	Name:  "nfl-teams",
	Sport: sport.AmericanFootball,
	Kind:  KindEntity,
	Terms: []string{
		// AFC East
		"patriots", "bills", "dolphins", "jets",
		// AFC North
		"ravens", "bengals", "browns", "steelers",
		// AFC South
		"texans", "colts", "jaguars", "jags", "titans",
		// AFC West
		"broncos", "chiefs", "raiders", "chargers",
		// NFC East
		"cowboys", "giants", "eagles", "commanders", "washington",
		// NFC North
		"bears", "lions", "packers", "vikings",
		// NFC South
		"falcons", "panthers", "saints", "buccaneers", "bucs",
		// NFC West
		"cardinals", "rams", "49ers", "niners", "seahawks",
	},
}

// Hóquei no gelo

var iceHockeyLeagues = Table{
	Name:  "ice-hockey-leagues",
	Sport: sport.IceHockey,
	Kind:  KindLeague,
	Terms: []string{"nhl", "khl", "shl", "liiga", "del", "stanley cup"},
}

var nhlTeams = Table{
	Name:  "nhl-teams",
	Sport: sport.IceHockey,
	Kind:  KindEntity,
	Terms: []string{
		// Atlantic
		"bruins", "sabres", "red wings", "panthers", "canadiens", "habs",
		"senators", "lightning", "maple leafs", "leafs",
		// Metropolitan
		"hurricanes", "canes", "blue jackets", "devils", "islanders",
		"rangers", "flyers", "penguins", "pens", "capitals", "caps",
		// Central
		"blackhawks", "hawks", "avalanche", "avs", "stars", "wild",
		"predators", "preds", "blues", "jets",
		// Pacific
		"ducks", "flames", "oilers", "kings", "sharks", "kraken",
		"canucks", "golden knights", "knights", "coyotes", "yotes",
	},
}

var iceHockeyInternational = Table{
	Name:  "ice-hockey-international",
	Sport: sport.IceHockey,
	Kind:  KindEntity,
	Terms: []string{
		"jokerit", "ska", "cska", "dynamo", "spartak", "lokomotiv",
		"metallurg", "avangard", "frölunda", "hv71", "djurgarden",
		"lulea", "vaxjo", "zurich", "zsc", "bern", "davos",
	},
}

// Beisebol

var baseballLeagues = Table{
	Name:  "baseball-leagues",
	Sport: sport.Baseball,
	Kind:  KindLeague,
	Terms: []string{"mlb", "world series", "baseball"},
}

var mlbTeams = Table{
	Name:  "mlb-teams",
	Sport: sport.Baseball,
	Kind:  KindEntity,
	Terms: []string{
		// AL East
		"red sox", "yankees", "yanks", "blue jays", "jays", "orioles", "rays",
		// AL Central
		"white sox", "indians", "guardians", "tigers", "royals", "twins",
		// AL West
		"astros", "angels", "athletics", "a's", "mariners", "rangers",
		// NL East
		"braves", "marlins", "mets", "phillies", "nationals", "nats",
		// NL Central
		"cubs", "reds", "brewers", "pirates", "cardinals", "cards",
		// NL West
		"diamondbacks", "d-backs", "rockies", "dodgers", "padres", "giants",
	},
}

// Tênis

var tennisTournaments = Table{
	Name:  "tennis-tournaments",
	Sport: sport.Tennis,
	Kind:  KindLeague,
	Terms: []string{
		"atp", "wta", "grand slam", "wimbledon", "roland garros", "french open",
		"us open", "australian open", "davis cup", "masters 1000", "atp 500",
	},
}

var tennisPlayers = Table{
	Name:  "tennis-players",
	Sport: sport.Tennis,
	Kind:  KindEntity,
	Terms: []string{
		"djokovic", "nadal", "federer", "alcaraz", "medvedev", "tsitsipas",
		"zverev", "rublev", "sinner", "ruud", "auger-aliassime", "fritz",
		"swiatek", "sabalenka", "gauff", "rybakina", "jabeur", "pegula",
		"kvitova", "osaka", "halep", "muguruza", "raducanu", "kerber",
	},
}

// eSports

var esportsTournaments = Table{
	Name:  "esports-games-and-tournaments",
	Sport: sport.Esports,
	Kind:  KindLeague,
	Terms: []string{
		"lol", "league of legends", "dota", "dota 2", "csgo", "cs:go", "cs2", "cs:2",
		"valorant", "overwatch", "ow", "apex legends", "call of duty", "cod",
		"rocket league", "rl", "fortnite", "worlds", "the international", "ti",
		"iem", "esl", "blast", "pgl major", "vct",
	},
}

var esportsTeams = Table{
	Name:  "esports-teams",
	Sport: sport.Esports,
	Kind:  KindEntity,
	Terms: []string{
		// CS
		"navi", "na'vi", "natus vincere", "faze clan", "faze", "g2 esports", "g2",
		"vitality", "team vitality", "astralis", "heroic", "cloud9", "c9",
		"team liquid", "liquid", "fnatic", "mouz", "mousesports", "big clan",
		// League of Legends
		"t1", "skt", "gen.g", "geng", "damwon", "drx", "jd gaming", "jdg",
		"edg", "edward gaming", "rng", "royal never give up", "tes", "top esports",
		"fpx", "funplus phoenix", "we", "team we", "ig", "invictus gaming",
		// Dota 2
		"og esports", "og", "team secret", "evil geniuses", "eg", "psg.lgd",
		"team spirit", "tundra esports", "tundra",
		// Valorant
		"sentinels", "optic gaming", "loud", "paper rex", "prx", "drx",
		// outros
		"100 thieves", "100t", "tsm", "team solomid", "nrg", "complexity",
	},
}

// Handebol

var handballLeagues = Table{
	Name:  "handball-leagues",
	Sport: sport.Handball,
	Kind:  KindLeague,
	Terms: []string{"ehf", "champions league handball", "handball bundesliga", "handball"},
}

var handballClubs = Table{
	Name:  "handball-clubs",
	Sport: sport.Handball,
	Kind:  KindEntity,
	Terms: []string{
		"kiel", "thw kiel", "barcelona", "barca", "fc barcelona", "montpellier",
		"veszprem", "telekom veszprem", "vardar", "flensburg", "sg flensburg",
		"psg handball", "paris", "aalborg", "aalborg handbold", "kielce", "vive kielce",
		"meshkov brest", "meshkov", "celje", "pick szeged", "szeged", "magdeburg",
		"sc magdeburg", "nantes", "lemgo", "gummersbach", "porto",
	},
}

// Vôlei

var volleyballLeagues = Table{
	Name:  "volleyball-leagues",
	Sport: sport.Volleyball,
	Kind:  KindLeague,
	Terms: []string{"volleyball", "cev champions league", "superliga", "serie a1 volleyball"},
}

var volleyballClubs = Table{
	Name:  "volleyball-clubs",
	Sport: sport.Volleyball,
	Kind:  KindEntity,
	Terms: []string{
		"perugia", "sir perugia", "trentino", "itas trentino", "modena", "lube civitanova",
		"lube", "cucine lube", "zenit kazan", "zenit", "zaksa", "fenerbahce",
		"halkbank", "berlin recycling", "berlin", "monza", "piacenza", "milano",
	},
}

// Futebol

var footballClubs = Table{
	Name:  "football-clubs",
	Sport: sport.Football,
	Kind:  KindEntity,
	Terms: []string{
		// Inglaterra
		"arsenal", "chelsea", "liverpool", "manchester united", "man united", "man utd",
		"manchester city", "man city", "tottenham", "spurs", "everton", "leicester",
		"west ham", "wolves", "wolverhampton", "newcastle", "aston villa", "brighton",
		"crystal palace", "southampton", "leeds", "norwich", "watford", "burnley",
		"fulham", "brentford", "bournemouth", "nottingham forest",
		// Espanha
		"real madrid", "barcelona", "atletico madrid", "atletico", "sevilla",
		"valencia", "villarreal", "real sociedad", "athletic bilbao", "athletic club",
		"real betis", "betis", "celta vigo", "espanyol", "getafe", "osasuna",
		// Alemanha
		"bayern munich", "bayern", "borussia dortmund", "dortmund", "bvb",
		"rb leipzig", "leipzig", "bayer leverkusen", "leverkusen", "borussia monchengladbach",
		"gladbach", "wolfsburg", "frankfurt", "eintracht", "union berlin", "freiburg",
		"hoffenheim", "cologne", "mainz", "augsburg", "hertha",
		// Itália
		"juventus", "juve", "inter milan", "inter", "ac milan", "milan", "napoli",
		"roma", "lazio", "atalanta", "fiorentina", "torino", "sassuolo", "hellas verona",
		"sampdoria", "genoa", "bologna", "udinese", "cagliari", "empoli",
		// França
		"psg", "paris saint-germain", "marseille", "lyon", "monaco", "lille",
		"nice", "rennes", "montpellier", "nantes", "strasbourg", "lens",
		// Portugal
		"benfica", "porto", "sporting", "sporting cp", "braga",
		// Holanda
		"ajax", "psv", "psv eindhoven", "feyenoord", "az alkmaar",
		// outros
		"celtic", "rangers", "galatasaray", "besiktas", "anderlecht",
	},
}

// cuidado: várias destas substrings colidem com outros esportes, por isso
// rodam depois de todas as outras passagens
var footballKeywords = Table{
	Name:  "football-keywords",
	Sport: sport.Football,
	Kind:  KindGeneric,
	Terms: []string{
		"fc ", " fc", "united ", "city ", "champions league", "ucl", "europa league",
		"premier league", "la liga", "bundesliga", "serie a", "ligue 1",
		"championship", "eredivisie", "primeira liga", "copa del rey", "fa cup",
	},
}
