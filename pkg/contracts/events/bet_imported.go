package events

// Evento publicado pelo importador de apostas para cada linha importada.
// Game é a descrição livre do jogo, como veio do arquivo.
type BetImported struct {
	BetID    string `json:"bet_id"`
	UserID   string `json:"user_id"`
	Game     string `json:"game"`
	TsUnixMs int64  `json:"ts_unix_ms"`
}
