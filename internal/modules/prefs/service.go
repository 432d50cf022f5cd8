// README: Preference service: get-or-create defaults, wholesale save.
package prefs

import "context"

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get returns the user's preferences, creating and persisting the defaults on
// first visit.
func (s *Service) Get(ctx context.Context, userID string) (*Preferences, error) {
	p, err := s.store.Get(ctx, userID)
	if err == nil {
		return p, nil
	}
	if err != ErrNotFound {
		return nil, err
	}
	p = Default(userID)
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save replaces the user's preferences wholesale.
func (s *Service) Save(ctx context.Context, userID string, p *Preferences) error {
	p.UserID = userID
	return s.store.Save(ctx, p)
}
