// README: Per-user travel preferences shown on the profile page.
package prefs

// Preferences captures how a user likes to travel. Stored wholesale; the
// profile page reads and saves the whole record.
type Preferences struct {
	UserID                   string   `json:"user_id"`
	TravelStyle              string   `json:"travel_style"`
	PreferredThemes          []string `json:"preferred_themes"`
	AccommodationPreferences []string `json:"accommodation_preferences"`
	DietaryRestrictions      []string `json:"dietary_restrictions"`
	LanguagePreference       string   `json:"language_preference"`
	MobilityRequirements     string   `json:"mobility_requirements"`
	GroupTravelPreference    string   `json:"group_travel_preference"`
}

// Default returns the record created on a user's first profile visit.
func Default(userID string) *Preferences {
	return &Preferences{
		UserID:                   userID,
		TravelStyle:              "mid-range",
		PreferredThemes:          []string{},
		AccommodationPreferences: []string{},
		DietaryRestrictions:      []string{},
		LanguagePreference:       "english",
		MobilityRequirements:     "none",
		GroupTravelPreference:    "couple",
	}
}
