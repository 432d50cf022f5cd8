// README: Preference stores: in-process memory and Postgres.
package prefs

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("prefs: not found")

// Store persists one Preferences record per user.
type Store interface {
	Get(ctx context.Context, userID string) (*Preferences, error)
	Save(ctx context.Context, p *Preferences) error
}

// Memory keeps preferences in-process.
type Memory struct {
	mu   sync.RWMutex
	recs map[string]Preferences
}

func NewMemory() *Memory {
	return &Memory{recs: make(map[string]Preferences)}
}

func (m *Memory) Get(_ context.Context, userID string) (*Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.recs[userID]
	if !ok {
		return nil, ErrNotFound
	}
	out := rec
	return &out, nil
}

func (m *Memory) Save(_ context.Context, p *Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs[p.UserID] = *p
	return nil
}
