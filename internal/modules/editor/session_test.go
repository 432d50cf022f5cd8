package editor

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"yatra/internal/ai"
	"yatra/internal/modules/trip"
	"yatra/internal/store"
)

func TestSessionOpensWithGreeting(t *testing.T) {
	repo := trip.NewRepository(store.NewMemory())
	sess := NewSession(NewService(repo, &stubProvider{}), "t1")

	msgs := sess.Messages()
	if len(msgs) != 1 || msgs[0].Sender != SenderAI || msgs[0].Text != Greeting {
		t.Errorf("unexpected opening transcript: %v", msgs)
	}
	if sess.State() != StateIdle {
		t.Errorf("state = %s, want idle", sess.State())
	}
}

func TestSessionSubmitSuccess(t *testing.T) {
	repo := trip.NewRepository(store.NewMemory())
	plan := seedPlan(t, repo)
	provider := &stubProvider{response: modificationResponse(t, plan, "Moved dinner to day 2.")}
	sess := NewSession(NewService(repo, provider), plan.ID)

	reply, err := sess.Submit(context.Background(), "move dinner to day 2")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if reply != "Moved dinner to day 2." {
		t.Errorf("reply = %q", reply)
	}

	msgs := sess.Messages()
	if len(msgs) != 3 {
		t.Fatalf("transcript has %d messages, want 3", len(msgs))
	}
	if msgs[1].Sender != SenderUser || msgs[2].Sender != SenderAI {
		t.Errorf("unexpected senders: %v", msgs)
	}
	if sess.State() != StateIdle {
		t.Errorf("state = %s, want idle after settle", sess.State())
	}
}

func TestSessionSubmitFailureAppendsOneApology(t *testing.T) {
	repo := trip.NewRepository(store.NewMemory())
	plan := seedPlan(t, repo)
	// Parses as JSON but misses both contract keys.
	provider := &stubProvider{response: `{"something": "else"}`}
	sess := NewSession(NewService(repo, provider), plan.ID)

	before, _ := repo.GetByID(context.Background(), plan.ID)
	reply, err := sess.Submit(context.Background(), "do something")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if reply != apology {
		t.Errorf("reply = %q, want the fixed apology", reply)
	}

	msgs := sess.Messages()
	apologies := 0
	for _, m := range msgs {
		if m.Text == apology {
			apologies++
		}
	}
	if apologies != 1 {
		t.Errorf("transcript has %d apologies, want exactly 1", apologies)
	}

	after, _ := repo.GetByID(context.Background(), plan.ID)
	if !reflect.DeepEqual(before, after) {
		t.Error("itinerary changed despite failed modification")
	}
	if sess.State() != StateIdle {
		t.Errorf("state = %s, want idle after settle", sess.State())
	}
}

func TestSessionRejectsEmptyInput(t *testing.T) {
	repo := trip.NewRepository(store.NewMemory())
	sess := NewSession(NewService(repo, &stubProvider{}), "t1")

	if _, err := sess.Submit(context.Background(), "   "); err != ErrEmptyInput {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if len(sess.Messages()) != 1 {
		t.Error("transcript changed on empty input")
	}
}

// blockingProvider parks GenerateJSON until released.
type blockingProvider struct {
	release  chan struct{}
	response string
}

func (p *blockingProvider) GenerateText(_ context.Context, _ string, _ ai.Options) (string, error) {
	return p.response, nil
}

func (p *blockingProvider) GenerateJSON(_ context.Context, _ string, _ ai.Schema, out any, _ ai.Options) error {
	<-p.release
	return json.Unmarshal([]byte(p.response), out)
}

func TestSessionThinkingRotatesWhileProcessing(t *testing.T) {
	repo := trip.NewRepository(store.NewMemory())
	plan := seedPlan(t, repo)
	provider := &blockingProvider{
		release:  make(chan struct{}),
		response: modificationResponse(t, plan, "ok"),
	}
	sess := NewSession(NewService(repo, provider), plan.ID)
	sess.rotateEvery = 2 * time.Millisecond

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = sess.Submit(context.Background(), "slow request")
	}()

	deadline := time.After(2 * time.Second)
	rotated := false
	for !rotated {
		select {
		case <-deadline:
			t.Fatal("thinking status never rotated past the first step")
		default:
		}
		if msg, ok := sess.Thinking(); ok && msg != ThinkingSteps[0] {
			rotated = true
		}
		time.Sleep(time.Millisecond)
	}

	close(provider.release)
	<-done

	if _, ok := sess.Thinking(); ok {
		t.Error("thinking still reported after the request settled")
	}
}
