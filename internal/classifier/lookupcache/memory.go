package lookupcache

import (
	"context"
	"sync"
)

// Memory é o cache em processo. Sem TTL e sem despejo: cresce durante toda a
// vida do processo.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemory cria um cache vazio
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

// NewMemoryFrom cria um cache pré-carregado (útil para testes e aquecimento)
func NewMemoryFrom(seed map[string]Entry) *Memory {
	m := NewMemory()
	for k, v := range seed {
		m.entries[NormalizeKey(k)] = v
	}
	return m
}

func (m *Memory) Get(_ context.Context, key string) (Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	return e, ok, nil
}

func (m *Memory) Set(_ context.Context, key string, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = e
	return nil
}

// Len retorna o número de chaves memorizadas
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
