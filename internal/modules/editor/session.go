// README: Editor session: transcript plus the idle/processing state machine.
package editor

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"yatra/internal/types"
)

// Greeting opens every editor transcript.
const Greeting = "Hello! I'm your AI travel assistant. How can I modify your itinerary today? For example, you can say 'find cheaper flights' or 'add a relaxing activity on day 3'."

// apology is appended when a modification request fails for any reason.
const apology = "I'm sorry, I encountered an error trying to modify your plan. Please try a different request."

// ThinkingSteps rotate on screen while a request is in flight. Cosmetic.
var ThinkingSteps = []string{
	"Analyzing your request...",
	"Accessing travel database...",
	"Evaluating alternatives and costs...",
	"Recalculating budget and schedule...",
	"Finalizing new itinerary...",
}

const thinkingInterval = 1500 * time.Millisecond

type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

var (
	ErrEmptyInput = errors.New("editor: empty input")
	ErrBusy       = errors.New("editor: request already in flight")
)

// Session holds the conversation transcript for one trip plan. It moves
// Idle -> Processing on submission and back to Idle once the request
// settles, successfully or not.
type Session struct {
	svc    *Service
	tripID types.ID

	mu           sync.Mutex
	state        State
	messages     []Message
	thinkingStep int

	rotateEvery time.Duration
}

func NewSession(svc *Service, tripID types.ID) *Session {
	return &Session{
		svc:         svc,
		tripID:      tripID,
		state:       StateIdle,
		messages:    []Message{{Sender: SenderAI, Text: Greeting}},
		rotateEvery: thinkingInterval,
	}
}

// Submit records the user's text, runs the modification request, and appends
// the assistant's reply (confirmation or the fixed apology). The returned
// string is the appended reply.
func (s *Session) Submit(ctx context.Context, userText string) (string, error) {
	if strings.TrimSpace(userText) == "" {
		return "", ErrEmptyInput
	}

	s.mu.Lock()
	if s.state == StateProcessing {
		s.mu.Unlock()
		return "", ErrBusy
	}
	s.state = StateProcessing
	s.thinkingStep = 0
	s.messages = append(s.messages, Message{Sender: SenderUser, Text: userText})
	s.mu.Unlock()

	done := make(chan struct{})
	go s.rotateThinking(done)

	_, confirmation, err := s.svc.Modify(ctx, s.tripID, userText)
	close(done)

	reply := confirmation
	if err != nil {
		log.Printf("editor: modify trip %s: %v", s.tripID, err)
		reply = apology
	}

	s.mu.Lock()
	s.messages = append(s.messages, Message{Sender: SenderAI, Text: reply})
	s.state = StateIdle
	s.mu.Unlock()
	return reply, nil
}

// rotateThinking advances the status line until the request settles.
func (s *Session) rotateThinking(done <-chan struct{}) {
	ticker := time.NewTicker(s.rotateEvery)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.thinkingStep = (s.thinkingStep + 1) % len(ThinkingSteps)
			s.mu.Unlock()
		}
	}
}

// Thinking reports the current rotating status message while processing.
func (s *Session) Thinking() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateProcessing {
		return "", false
	}
	return ThinkingSteps[s.thinkingStep], true
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}
