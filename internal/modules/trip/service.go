// README: Trip service: validates the form, drives generation, persists plans.
package trip

import (
	"context"
	"sort"
	"time"

	"yatra/internal/ai"
	"yatra/internal/types"
)

type Service struct {
	repo *Repository
	ai   ai.Provider
	now  func() time.Time
}

func NewService(repo *Repository, provider ai.Provider) *Service {
	return &Service{repo: repo, ai: provider, now: time.Now}
}

// Plan validates the request, generates an itinerary through the AI provider,
// and persists the resulting plan. Nothing is written to the store until a
// fully parsed response is in hand.
func (s *Service) Plan(ctx context.Context, req Request) (*TripPlan, error) {
	req.applyDefaults()
	if verr := req.Validate(s.now()); verr != nil {
		return nil, verr
	}

	start, _ := time.Parse(DateLayout, req.StartDate)
	end, _ := time.Parse(DateLayout, req.EndDate)
	durationDays := DurationDays(start, end)

	var gen GeneratedItinerary
	prompt := BuildPrompt(req, durationDays)
	if err := s.ai.GenerateJSON(ctx, prompt, ResponseSchema(), &gen, ai.Options{UseExternalContext: true}); err != nil {
		return nil, err
	}

	themes := req.Themes
	if themes == nil {
		themes = []string{}
	}
	plan := &TripPlan{
		Title:                "Trip from " + req.Source + " to " + req.Destination,
		Source:               req.Source,
		Destination:          req.Destination,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		DurationDays:         durationDays,
		Budget:               req.Budget,
		BudgetPerPerson:      req.Budget / float64(req.Travelers),
		Travelers:            req.Travelers,
		TravelThemes:         themes,
		AccommodationType:    req.AccommodationType,
		TransportPreferences: []string{"flight", "train", "local_transport"},
		Flights:              gen.Flights,
		Itinerary:            gen.Itinerary,
		TotalEstimatedCost:   gen.TotalEstimatedCost,
		CostBreakdown:        gen.CostBreakdown,
		AIRecommendations:    gen.AIRecommendations,
		Status:               StatusGenerated,
		CreatedDate:          s.now().UTC().Format(time.RFC3339),
	}
	return s.repo.Create(ctx, plan)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*TripPlan, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all plans, most recently created first.
func (s *Service) List(ctx context.Context) ([]*TripPlan, error) {
	plans, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].CreatedDate > plans[j].CreatedDate
	})
	return plans, nil
}

func (s *Service) Update(ctx context.Context, id types.ID, partial map[string]any) error {
	return s.repo.Update(ctx, id, partial)
}

func (s *Service) Filter(ctx context.Context, id types.ID) ([]*TripPlan, error) {
	return s.repo.Filter(ctx, id)
}
