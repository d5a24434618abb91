// Package lookupcache memoriza o resultado das consultas de time no provedor
// remoto, incluindo os resultados negativos ("consultado, sem resposta").
package lookupcache

import (
	"context"
	"strings"

	"github.com/radieske/sports-ledger/internal/classifier/sport"
)

// Entry é o resultado memorizado de uma consulta.
// Matched=false é uma entrada negativa: não consultar de novo.
type Entry struct {
	Sport   sport.Category `json:"sport,omitempty"`
	Matched bool           `json:"matched"`
}

// Negative é a entrada gravada quando o provedor falha ou não encontra o time
var Negative = Entry{}

// Hit cria uma entrada positiva
func Hit(s sport.Category) Entry { return Entry{Sport: s, Matched: true} }

// Cache é o armazenamento de consultas. found=false significa chave nunca
// consultada, diferente de uma entrada negativa.
type Cache interface {
	Get(ctx context.Context, key string) (e Entry, found bool, err error)
	Set(ctx context.Context, key string, e Entry) error
}

// NormalizeKey gera a chave de cache a partir do nome do time
func NormalizeKey(teamName string) string {
	return strings.ToLower(strings.TrimSpace(teamName))
}
