// README: Simulated booking agent: a fixed, timed script ending in one status update.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"yatra/internal/modules/trip"
	"yatra/internal/types"
)

type StepStatus string

const (
	StepPending StepStatus = "pending"
	StepSuccess StepStatus = "success"
	StepError   StepStatus = "error"
)

// Step is one scripted log line: what to show, its status tag, and how long
// to wait before committing it.
type Step struct {
	Message string
	Status  StepStatus
	Delay   time.Duration
}

// Script renders the fixed booking sequence for one plan. No real network
// calls happen anywhere in this flow; it simulates an external booking
// integration.
func Script(plan *trip.TripPlan) []Step {
	return []Step{
		{"Initializing booking agent...", StepPending, 500 * time.Millisecond},
		{"Booking agent initialized. Authenticating with provider network...", StepSuccess, 1500 * time.Millisecond},
		{"Querying EaseMyTrip API for flight availability...", StepPending, 500 * time.Millisecond},
		{fmt.Sprintf("Found 3 flight options for %s -> %s. Selecting best match...", plan.Source, plan.Destination), StepSuccess, 2 * time.Second},
		{fmt.Sprintf("Securing flight booking for %d passenger(s)...", plan.Travelers), StepPending, 500 * time.Millisecond},
		{"Flights confirmed. PNR: UK4E8P.", StepSuccess, 2500 * time.Millisecond},
		{"Searching for hotel accommodations...", StepPending, 500 * time.Millisecond},
		{fmt.Sprintf("Found %d suitable hotel(s). Cross-referencing with user preferences...", plan.HotelCount()), StepSuccess, 2 * time.Second},
		{"Booking all accommodations...", StepPending, 500 * time.Millisecond},
		{"All accommodations confirmed.", StepSuccess, 3 * time.Second},
		{"Initiating secure payment via gateway...", StepPending, 500 * time.Millisecond},
		{fmt.Sprintf("Processing payment of ₹%s...", formatAmount(plan.TotalEstimatedCost)), StepSuccess, 2 * time.Second},
		{"Payment successful. All bookings are confirmed!", StepSuccess, time.Second},
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateSuccess    State = "success"
)

var ErrAlreadyRunning = errors.New("booking: agent already running")

// TripUpdater is the slice of the trip repository the agent needs.
type TripUpdater interface {
	Update(ctx context.Context, id types.ID, partial map[string]any) error
}

// Agent runs the scripted sequence for a single trip. Steps execute strictly
// in order: the next delay starts only after the previous entry is committed.
// One-shot and restartable, but not resumable; there is no cancellation once
// a run has started.
type Agent struct {
	trips TripUpdater
	sink  LogSink

	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time

	mu    sync.Mutex
	state State
}

func NewAgent(trips TripUpdater, sink LogSink) *Agent {
	return &Agent{
		trips: trips,
		sink:  sink,
		sleep: sleepFor,
		now:   time.Now,
		state: StateIdle,
	}
}

func sleepFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// timestampLayout matches the 24-hour clock shown in the agent log.
const timestampLayout = "15:04:05"

// Run executes the whole script and then performs exactly one status update
// to "booked". A restart clears the previous log first.
func (a *Agent) Run(ctx context.Context, plan *trip.TripPlan) error {
	a.mu.Lock()
	if a.state == StateProcessing {
		a.mu.Unlock()
		return ErrAlreadyRunning
	}
	a.state = StateProcessing
	a.mu.Unlock()

	if err := a.sink.Reset(ctx, plan.ID); err != nil {
		a.setState(StateIdle)
		return err
	}

	for _, step := range Script(plan) {
		if err := a.sleep(ctx, step.Delay); err != nil {
			a.setState(StateIdle)
			return err
		}
		entry := Entry{
			Timestamp: a.now().Format(timestampLayout),
			Message:   step.Message,
			Status:    step.Status,
		}
		if err := a.sink.Append(ctx, plan.ID, entry); err != nil {
			a.setState(StateIdle)
			return err
		}
	}

	if err := a.trips.Update(ctx, plan.ID, map[string]any{"status": string(trip.StatusBooked)}); err != nil {
		a.setState(StateIdle)
		return err
	}
	a.setState(StateSuccess)
	return nil
}

func (a *Agent) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}

func (a *Agent) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}
