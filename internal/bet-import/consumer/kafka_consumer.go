package consumer

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/sports-ledger/internal/bet-import/repository"
	"github.com/radieske/sports-ledger/internal/classifier"
	"github.com/radieske/sports-ledger/internal/classifier/sport"
	"github.com/radieske/sports-ledger/pkg/contracts/events"
)

// Estágios reportados em OnError
const (
	StageRead     = "read"
	StageDecode   = "decode"
	StageValidate = "validate"
	StageUpdate   = "db_update"
	StageAudit    = "db_audit"
	StagePublish  = "publish"
	StageDLQ      = "dlq"
)

const readBackoff = 500 * time.Millisecond

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type SportClassifier interface {
	ClassifyDetailed(ctx context.Context, game string) classifier.Result
}

type Repository interface {
	UpdateSport(ctx context.Context, betID string, s sport.Category) error
	InsertClassification(ctx context.Context, c repository.Classification) error
}

type Publisher interface {
	Publish(ctx context.Context, e events.BetClassified) error
}

type DeadLetter interface {
	Send(ctx context.Context, original kafka.Message, reason string) error
}

// Processor consome bet_imported, classifica o esporte do jogo, grava na
// aposta e publica bet_classified. DLQ é opcional.
type Processor struct {
	Log        *zap.Logger
	Reader     MessageReader
	Classifier SportClassifier
	Repo       Repository
	Publisher  Publisher
	DLQ        DeadLetter

	NewID func() string
	Now   func() time.Time

	OnConsumed func()       // métricas (counter++)
	OnPersist  func()       // métricas
	OnError    func(string) // métricas por fase
}

// Run inicia o loop principal de consumo; retorna quando o contexto é cancelado
func (p *Processor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			p.fail(StageRead)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(readBackoff):
			}
			continue
		}

		p.Handle(ctx, m)
	}
}

// Handle processa uma mensagem. Mensagens inválidas são descartadas; falhas de
// persistência ou publicação vão para a DLQ quando configurada.
func (p *Processor) Handle(ctx context.Context, m kafka.Message) {
	if p.OnConsumed != nil {
		p.OnConsumed()
	}

	var ev events.BetImported
	if err := json.Unmarshal(m.Value, &ev); err != nil {
		p.Log.Warn("invalid message", zap.Error(err))
		p.fail(StageDecode)
		return
	}
	if strings.TrimSpace(ev.BetID) == "" {
		p.Log.Warn("message without bet_id", zap.ByteString("key", m.Key))
		p.fail(StageValidate)
		return
	}

	game := CleanGame(ev.Game)
	res := p.Classifier.ClassifyDetailed(ctx, game)

	if err := p.Repo.UpdateSport(ctx, ev.BetID, res.Sport); err != nil {
		p.Log.Warn("db update failed", zap.String("bet_id", ev.BetID), zap.Error(err))
		p.fail(StageUpdate)
		p.deadLetter(ctx, m, StageUpdate, err)
		return
	}

	rec := repository.Classification{
		ID:        p.newID(),
		BetID:     ev.BetID,
		Game:      game,
		Sport:     res.Sport,
		Source:    res.Source,
		CreatedAt: p.now(),
	}
	// auditoria não bloqueia: o esporte já está gravado na aposta
	if err := p.Repo.InsertClassification(ctx, rec); err != nil {
		p.Log.Warn("db insert classification failed", zap.String("bet_id", ev.BetID), zap.Error(err))
		p.fail(StageAudit)
	}
	if p.OnPersist != nil {
		p.OnPersist()
	}

	out := events.BetClassified{
		ClassificationID: rec.ID,
		BetID:            ev.BetID,
		UserID:           ev.UserID,
		Game:             game,
		Sport:            res.Sport.String(),
		Source:           res.Source,
		Ts:               rec.CreatedAt,
	}
	if err := p.Publisher.Publish(ctx, out); err != nil {
		p.fail(StagePublish)
		p.deadLetter(ctx, m, StagePublish, err)
		return
	}

	p.Log.Info("bet classified",
		zap.String("bet_id", ev.BetID),
		zap.String("sport", out.Sport),
		zap.String("source", out.Source),
	)
}

// CleanGame remove aspas e espaços nas pontas da descrição vinda do arquivo importado
func CleanGame(game string) string {
	return strings.Trim(game, "\" \t\r\n")
}

func (p *Processor) deadLetter(ctx context.Context, m kafka.Message, stage string, cause error) {
	if p.DLQ == nil {
		return
	}
	if err := p.DLQ.Send(ctx, m, stage+": "+cause.Error()); err != nil {
		p.Log.Error("dlq send failed", zap.Error(err))
		p.fail(StageDLQ)
	}
}

func (p *Processor) fail(stage string) {
	if p.OnError != nil {
		p.OnError(stage)
	}
}

func (p *Processor) newID() string {
	if p.NewID != nil {
		return p.NewID()
	}
	return uuid.NewString()
}

func (p *Processor) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now().UTC()
}
