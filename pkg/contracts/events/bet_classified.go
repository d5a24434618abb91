package events

import "time"

// Evento emitido pelo bet-import-classifier-worker depois de gravar o esporte da aposta.
type BetClassified struct {
	ClassificationID string    `json:"classification_id"`
	BetID            string    `json:"bet_id"`
	UserID           string    `json:"user_id"`
	Game             string    `json:"game"`
	Sport            string    `json:"sport"`  // valor de exibição, ex.: "Ice Hockey"
	Source           string    `json:"source"` // "remote" | "local"
	Ts               time.Time `json:"ts"`
}
