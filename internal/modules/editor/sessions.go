// README: Per-trip session registry backing the chat endpoints.
package editor

import (
	"sync"

	"yatra/internal/types"
)

// Sessions hands out one conversation per trip plan, created on first use.
type Sessions struct {
	svc *Service

	mu     sync.Mutex
	byTrip map[types.ID]*Session
}

func NewSessions(svc *Service) *Sessions {
	return &Sessions{svc: svc, byTrip: make(map[types.ID]*Session)}
}

// For returns the session bound to the given trip.
func (s *Sessions) For(tripID types.ID) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byTrip[tripID]
	if !ok {
		sess = NewSession(s.svc, tripID)
		s.byTrip[tripID] = sess
	}
	return sess
}
