package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/radieske/sports-ledger/internal/classifier/sport"
)

// ErrBetNotFound indica que o UPDATE não encontrou a aposta
var ErrBetNotFound = errors.New("bet not found")

// PostgresRepo grava o esporte classificado das apostas importadas
type PostgresRepo struct {
	DB *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{DB: db}
}

// UpdateSport grava o valor de exibição do esporte na aposta
func (r *PostgresRepo) UpdateSport(ctx context.Context, betID string, s sport.Category) error {
	const q = `UPDATE bets SET sport=$1, updated_at=NOW() WHERE id=$2`

	res, err := r.DB.ExecContext(ctx, q, s.String(), betID)
	if err != nil {
		return fmt.Errorf("update bet sport: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update bet sport: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrBetNotFound, betID)
	}
	return nil
}

// InsertClassification registra a classificação em bet_sport_classifications
func (r *PostgresRepo) InsertClassification(ctx context.Context, c Classification) error {
	const q = `
		INSERT INTO bet_sport_classifications
		  (id, bet_id, game, sport, source, created_at)
		VALUES
		  ($1,$2,$3,$4,$5,$6)
	`
	_, err := r.DB.ExecContext(ctx, q,
		c.ID, c.BetID, c.Game, c.Sport.String(), c.Source, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bet classification: %w", err)
	}
	return nil
}
