package sportsdb

// searchTeamsResponse é o corpo de searchteams.php. "teams" vem null quando
// não há resultado.
type searchTeamsResponse struct {
	Teams []*Team `json:"teams"`
}

// Team é um candidato devolvido pelo provedor
type Team struct {
	ID        string `json:"idTeam"`
	Name      string `json:"strTeam"`
	Sport     string `json:"strSport"`
	League    string `json:"strLeague"`
	Country   string `json:"strCountry"`
	TeamBadge string `json:"strTeamBadge"`
	Badge     string `json:"strBadge"`
}

func (t *Team) badge() string {
	if t.TeamBadge != "" {
		return t.TeamBadge
	}
	return t.Badge
}

// TeamResult é o time como exposto pela busca de times do ledger
type TeamResult struct {
	TeamID    string `json:"team_id"`
	TeamName  string `json:"team_name"`
	TeamBadge string `json:"team_badge,omitempty"`
	Sport     string `json:"sport"`
	League    string `json:"league,omitempty"`
	Country   string `json:"country,omitempty"`
}
