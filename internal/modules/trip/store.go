// README: Trip repository backed by the path-addressed document store.
package trip

import (
	"context"
	"encoding/json"
	"errors"

	"yatra/internal/store"
	"yatra/internal/types"
)

// Collection is the document-store path holding one record per trip id.
const Collection = "tripPlans"

var ErrNotFound = errors.New("trip plan not found")

type Repository struct {
	docs store.Document
}

func NewRepository(docs store.Document) *Repository {
	return &Repository{docs: docs}
}

// Create allocates a new id from the store, stamps it on the plan, and
// persists the full record. The id is assigned exactly once, here.
func (r *Repository) Create(ctx context.Context, plan *TripPlan) (*TripPlan, error) {
	id, err := r.docs.GenerateID(ctx, Collection)
	if err != nil {
		return nil, err
	}
	plan.ID = types.ID(id)
	if err := r.docs.Set(ctx, Collection+"/"+id, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// GetByID returns the record at id, or ErrNotFound for absence.
func (r *Repository) GetByID(ctx context.Context, id types.ID) (*TripPlan, error) {
	var plan TripPlan
	ok, err := r.docs.Get(ctx, Collection+"/"+string(id), &plan)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &plan, nil
}

// List returns all stored plans in no particular order; callers sort.
func (r *Repository) List(ctx context.Context) ([]*TripPlan, error) {
	records, err := r.docs.GetAll(ctx, Collection)
	if err != nil {
		return nil, err
	}
	plans := make([]*TripPlan, 0, len(records))
	for id, raw := range records {
		var plan TripPlan
		if err := json.Unmarshal(raw, &plan); err != nil {
			return nil, &store.StorageError{Op: "list", Path: Collection + "/" + id, Err: err}
		}
		if plan.ID == "" {
			plan.ID = types.ID(id)
		}
		plans = append(plans, &plan)
	}
	return plans, nil
}

// Update shallow-merges partial into the record at id. The id key is never
// rewritten by an update; the caller's map is left as given.
func (r *Repository) Update(ctx context.Context, id types.ID, partial map[string]any) error {
	merge := make(map[string]any, len(partial))
	for k, v := range partial {
		if k == "id" {
			continue
		}
		merge[k] = v
	}
	return r.docs.Update(ctx, Collection+"/"+string(id), merge)
}

// Filter wraps GetByID as a 0/1-element slice, mirroring the query surface
// the itinerary and booking views use.
func (r *Repository) Filter(ctx context.Context, id types.ID) ([]*TripPlan, error) {
	if id == "" {
		return []*TripPlan{}, nil
	}
	plan, err := r.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return []*TripPlan{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []*TripPlan{plan}, nil
}
