// README: Postgres-backed preference store.
package prefs

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, userID string) (*Preferences, error) {
	p := Preferences{UserID: userID}
	err := s.db.QueryRow(ctx,
		`SELECT travel_style, preferred_themes, accommodation_preferences,
		        dietary_restrictions, language_preference, mobility_requirements,
		        group_travel_preference
		 FROM user_preferences
		 WHERE user_id = $1`,
		userID,
	).Scan(&p.TravelStyle, &p.PreferredThemes, &p.AccommodationPreferences,
		&p.DietaryRestrictions, &p.LanguagePreference, &p.MobilityRequirements,
		&p.GroupTravelPreference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *PostgresStore) Save(ctx context.Context, p *Preferences) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO user_preferences (user_id, travel_style, preferred_themes,
		        accommodation_preferences, dietary_restrictions, language_preference,
		        mobility_requirements, group_travel_preference)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
		        travel_style = EXCLUDED.travel_style,
		        preferred_themes = EXCLUDED.preferred_themes,
		        accommodation_preferences = EXCLUDED.accommodation_preferences,
		        dietary_restrictions = EXCLUDED.dietary_restrictions,
		        language_preference = EXCLUDED.language_preference,
		        mobility_requirements = EXCLUDED.mobility_requirements,
		        group_travel_preference = EXCLUDED.group_travel_preference`,
		p.UserID, p.TravelStyle, p.PreferredThemes, p.AccommodationPreferences,
		p.DietaryRestrictions, p.LanguagePreference, p.MobilityRequirements,
		p.GroupTravelPreference)
	return err
}
