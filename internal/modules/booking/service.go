// README: Booking service: one agent per trip, started detached, log polled by the view.
package booking

import (
	"context"
	"log"
	"sync"

	"yatra/internal/modules/trip"
	"yatra/internal/types"
)

// TripStore is the slice of the trip repository the booking flow needs.
type TripStore interface {
	GetByID(ctx context.Context, id types.ID) (*trip.TripPlan, error)
	Update(ctx context.Context, id types.ID, partial map[string]any) error
}

type Service struct {
	trips TripStore
	sink  LogSink

	mu     sync.Mutex
	agents map[types.ID]*Agent
}

func NewService(trips TripStore, sink LogSink) *Service {
	return &Service{trips: trips, sink: sink, agents: make(map[types.ID]*Agent)}
}

func (s *Service) agent(id types.ID) *Agent {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.agents[id]
	if !ok {
		a = NewAgent(s.trips, s.sink)
		s.agents[id] = a
	}
	return a
}

// Start launches the agent for the given trip. The run is detached from the
// caller's request context: once started there is no cancellation.
func (s *Service) Start(ctx context.Context, id types.ID) error {
	plan, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return err
	}
	agent := s.agent(id)
	if agent.State() == StateProcessing {
		return ErrAlreadyRunning
	}
	go func() {
		if err := agent.Run(context.WithoutCancel(ctx), plan); err != nil {
			log.Printf("booking: agent run for trip %s: %v", id, err)
		}
	}()
	return nil
}

// Status reports the agent state for the given trip.
func (s *Service) Status(id types.ID) State {
	return s.agent(id).State()
}

// Log returns the committed agent log for the given trip.
func (s *Service) Log(ctx context.Context, id types.ID) ([]Entry, error) {
	return s.sink.Entries(ctx, id)
}
