package booking

import (
	"context"
	"testing"
	"time"

	"yatra/internal/modules/trip"
	"yatra/internal/store"
	"yatra/internal/types"
)

func seedPlan(t *testing.T, repo *trip.Repository) *trip.TripPlan {
	t.Helper()
	plan := &trip.TripPlan{
		Title:              "Trip from Delhi to Goa",
		Source:             "Delhi",
		Destination:        "Goa",
		StartDate:          "2026-09-10",
		EndDate:            "2026-09-14",
		DurationDays:       5,
		Budget:             50000,
		BudgetPerPerson:    25000,
		Travelers:          2,
		TravelThemes:       []string{"food"},
		AccommodationType:  "mid-range",
		Itinerary: []trip.DayPlan{
			{Day: 1, Date: "2026-09-10", Location: "North Goa", Activities: []trip.Activity{}, Accommodation: &trip.Accommodation{Name: "Baga Beach Resort"}},
			{Day: 2, Date: "2026-09-11", Location: "South Goa", Activities: []trip.Activity{}, Accommodation: &trip.Accommodation{Name: "Palolem Huts"}},
			{Day: 3, Date: "2026-09-12", Location: "Panjim", Activities: []trip.Activity{}},
		},
		TotalEstimatedCost: 46500,
		Status:             trip.StatusGenerated,
		CreatedDate:        "2026-09-01T10:00:00Z",
	}
	created, err := repo.Create(context.Background(), plan)
	if err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	return created
}

// instantSleep records the requested delays without waiting.
func instantSleep(delays *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestScriptRendersPlanDetails(t *testing.T) {
	repo := trip.NewRepository(store.NewMemory())
	plan := seedPlan(t, repo)

	steps := Script(plan)
	if len(steps) != 13 {
		t.Fatalf("script has %d steps, want 13", len(steps))
	}
	wantMessages := map[int]string{
		3:  "Found 3 flight options for Delhi -> Goa. Selecting best match...",
		4:  "Securing flight booking for 2 passenger(s)...",
		7:  "Found 2 suitable hotel(s). Cross-referencing with user preferences...",
		11: "Processing payment of ₹46500...",
	}
	for i, want := range wantMessages {
		if steps[i].Message != want {
			t.Errorf("step %d = %q, want %q", i, steps[i].Message, want)
		}
	}
	if steps[12].Status != StepSuccess {
		t.Errorf("final step status = %s, want success", steps[12].Status)
	}
}

// countingUpdater records how many log entries were committed at the moment
// the status update lands.
type countingUpdater struct {
	repo        *trip.Repository
	sink        *MemorySink
	calls       int
	entriesSeen int
}

func (u *countingUpdater) Update(ctx context.Context, id types.ID, partial map[string]any) error {
	u.calls++
	entries, _ := u.sink.Entries(ctx, id)
	u.entriesSeen = len(entries)
	return u.repo.Update(ctx, id, partial)
}

func TestRunLogsEveryStepThenBooks(t *testing.T) {
	repo := trip.NewRepository(store.NewMemory())
	plan := seedPlan(t, repo)
	sink := NewMemorySink()
	updater := &countingUpdater{repo: repo, sink: sink}

	agent := NewAgent(updater, sink)
	var delays []time.Duration
	agent.sleep = instantSleep(&delays)
	agent.now = func() time.Time { return time.Date(2026, 9, 1, 14, 30, 5, 0, time.UTC) }

	if err := agent.Run(context.Background(), plan); err != nil {
		t.Fatalf("run: %v", err)
	}

	entries, err := sink.Entries(context.Background(), plan.ID)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	script := Script(plan)
	if len(entries) != len(script) {
		t.Fatalf("log has %d entries, want %d", len(entries), len(script))
	}
	for i, e := range entries {
		if e.Message != script[i].Message {
			t.Errorf("entry %d = %q, want %q", i, e.Message, script[i].Message)
		}
		if e.Status != script[i].Status {
			t.Errorf("entry %d status = %s, want %s", i, e.Status, script[i].Status)
		}
		if e.Timestamp != "14:30:05" {
			t.Errorf("entry %d timestamp = %q", i, e.Timestamp)
		}
	}

	if len(delays) != len(script) {
		t.Fatalf("agent slept %d times, want %d", len(delays), len(script))
	}
	for i, d := range delays {
		if d != script[i].Delay {
			t.Errorf("delay %d = %v, want %v", i, d, script[i].Delay)
		}
	}

	if updater.calls != 1 {
		t.Errorf("trip updated %d times, want exactly 1", updater.calls)
	}
	if updater.entriesSeen != len(script) {
		t.Errorf("status update landed with %d entries committed, want %d", updater.entriesSeen, len(script))
	}

	stored, err := repo.GetByID(context.Background(), plan.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != trip.StatusBooked {
		t.Errorf("stored status = %s, want booked", stored.Status)
	}
	if agent.State() != StateSuccess {
		t.Errorf("agent state = %s, want success", agent.State())
	}
}

func TestRunRestartResetsLog(t *testing.T) {
	repo := trip.NewRepository(store.NewMemory())
	plan := seedPlan(t, repo)
	sink := NewMemorySink()

	agent := NewAgent(repo, sink)
	var delays []time.Duration
	agent.sleep = instantSleep(&delays)

	for i := 0; i < 2; i++ {
		if err := agent.Run(context.Background(), plan); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	entries, _ := sink.Entries(context.Background(), plan.ID)
	if len(entries) != len(Script(plan)) {
		t.Errorf("log has %d entries after restart, want a fresh script run", len(entries))
	}
}

func TestRunRejectsConcurrentStart(t *testing.T) {
	repo := trip.NewRepository(store.NewMemory())
	plan := seedPlan(t, repo)
	sink := NewMemorySink()

	agent := NewAgent(repo, sink)
	started := make(chan struct{})
	release := make(chan struct{})
	agent.sleep = func(_ context.Context, _ time.Duration) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- agent.Run(context.Background(), plan) }()
	<-started

	if err := agent.Run(context.Background(), plan); err != ErrAlreadyRunning {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first run: %v", err)
	}
}
