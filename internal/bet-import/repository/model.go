package repository

import (
	"time"

	"github.com/radieske/sports-ledger/internal/classifier/sport"
)

// Classification é a linha de auditoria gravada a cada classificação de aposta
type Classification struct {
	ID        string
	BetID     string
	Game      string
	Sport     sport.Category
	Source    string // "remote" | "local"
	CreatedAt time.Time
}
