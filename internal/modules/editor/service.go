// README: Conversational itinerary editor: one LLM round-trip per modification request.
package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"yatra/internal/ai"
	"yatra/internal/modules/trip"
	"yatra/internal/types"
)

// ErrIncompleteResponse marks a reply that parsed as JSON but is missing one
// of the two contracted keys.
var ErrIncompleteResponse = errors.New("editor: response missing updatedItinerary or confirmationMessage")

// TripStore is the slice of the trip repository the editor needs.
type TripStore interface {
	GetByID(ctx context.Context, id types.ID) (*trip.TripPlan, error)
	Update(ctx context.Context, id types.ID, partial map[string]any) error
}

type Service struct {
	repo TripStore
	ai   ai.Provider
}

func NewService(repo TripStore, provider ai.Provider) *Service {
	return &Service{repo: repo, ai: provider}
}

// modification mirrors the two-key response contract.
type modification struct {
	UpdatedItinerary    json.RawMessage `json:"updatedItinerary"`
	ConfirmationMessage string          `json:"confirmationMessage"`
}

func responseSchema() ai.Schema {
	return ai.Schema{
		"type": "object",
		"properties": map[string]any{
			"updatedItinerary":    map[string]any{"type": "object"},
			"confirmationMessage": map[string]any{"type": "string"},
		},
	}
}

func buildPrompt(plan *trip.TripPlan, userText string) (string, error) {
	planJSON, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return "", fmt.Errorf("editor: marshalling trip plan: %w", err)
	}
	return fmt.Sprintf(`You are an expert travel agent AI. Your task is to modify a given travel itinerary based on a user's request.

Here is the current itinerary in JSON format:
%s

Here is the user's request:
"%s"

Your task is to:
1. Understand the user's request and modify the JSON itinerary to fulfill it. Update costs, totals, and schedules as needed.
2. Provide a brief, friendly confirmation message explaining the change you made.
3. Return ONLY a JSON object with two keys: 'updatedItinerary' (the complete, modified itinerary object conforming to the original schema) and 'confirmationMessage' (a string). Ensure the 'updatedItinerary' is a valid JSON object.`,
		planJSON, userText), nil
}

// Modify sends the current plan plus the user's request to the model and, on
// a complete response, persists the replacement itinerary wholesale. On any
// failure the stored plan is left untouched and the error is returned.
func (s *Service) Modify(ctx context.Context, id types.ID, userText string) (*trip.TripPlan, string, error) {
	plan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	prompt, err := buildPrompt(plan, userText)
	if err != nil {
		return nil, "", err
	}

	var mod modification
	if err := s.ai.GenerateJSON(ctx, prompt, responseSchema(), &mod, ai.Options{}); err != nil {
		return nil, "", err
	}
	if len(mod.UpdatedItinerary) == 0 || bytes.Equal(mod.UpdatedItinerary, []byte("null")) || mod.ConfirmationMessage == "" {
		return nil, "", ErrIncompleteResponse
	}

	var updated trip.TripPlan
	if err := json.Unmarshal(mod.UpdatedItinerary, &updated); err != nil {
		return nil, "", &ai.MalformedResponseError{Raw: string(mod.UpdatedItinerary), Err: err}
	}

	var fields map[string]any
	if err := json.Unmarshal(mod.UpdatedItinerary, &fields); err != nil {
		return nil, "", &ai.MalformedResponseError{Raw: string(mod.UpdatedItinerary), Err: err}
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, "", err
	}

	updated.ID = plan.ID
	return &updated, mod.ConfirmationMessage, nil
}
