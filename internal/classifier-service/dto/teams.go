package dto

// Team representa um time retornado pela busca
type Team struct {
	TeamID    string `json:"team_id"`
	TeamName  string `json:"team_name"`
	TeamBadge string `json:"team_badge,omitempty"`
	Sport     string `json:"sport"`
	League    string `json:"league,omitempty"`
	Country   string `json:"country,omitempty"`
}

// TeamSearchResponse resposta de GET /v1/teams/search
type TeamSearchResponse struct {
	Query string `json:"query"`
	Sport string `json:"sport,omitempty"`
	Teams []Team `json:"teams"`
}
