// README: Trip request form with field-level validation.
package trip

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Request holds the raw trip form fields.
type Request struct {
	Source             string   `json:"source" validate:"required"`
	Destination        string   `json:"destination" validate:"required"`
	StartDate          string   `json:"start_date" validate:"required"`
	EndDate            string   `json:"end_date" validate:"required"`
	Travelers          int      `json:"travelers" validate:"required,min=1"`
	Budget             float64  `json:"budget" validate:"required,gt=0"`
	Themes             []string `json:"travel_themes" validate:"omitempty,dive,oneof=heritage adventure nature food wellness nightlife photography shopping"`
	AccommodationType  string   `json:"accommodation_type" validate:"omitempty,oneof=budget mid-range luxury mixed"`
	AdditionalRequests string   `json:"additional_requests"`
}

// ValidationError maps form fields to user-facing messages. It is returned
// before any network call is made.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	return fmt.Sprintf("trip: invalid request (%d field(s))", len(e))
}

var fieldMessages = map[string]string{
	"Source":            "Source is required.",
	"Destination":       "Destination is required.",
	"StartDate":         "Start date is required.",
	"EndDate":           "End date is required.",
	"Travelers":         "Number of travelers must be at least 1.",
	"Budget":            "Budget must be a positive number.",
	"Themes":            "Unknown travel theme.",
	"AccommodationType": "Unknown accommodation type.",
}

var fieldNames = map[string]string{
	"Source":            "source",
	"Destination":       "destination",
	"StartDate":         "start_date",
	"EndDate":           "end_date",
	"Travelers":         "travelers",
	"Budget":            "budget",
	"Themes":            "travel_themes",
	"AccommodationType": "accommodation_type",
}

// Validate checks all rules against the given current time and returns nil or
// a complete field-error map.
func (r *Request) Validate(now time.Time) ValidationError {
	errs := ValidationError{}

	if err := validate.Struct(r); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				name := fieldNames[fe.StructField()]
				if name == "" {
					name = fe.StructField()
				}
				msg := fieldMessages[fe.StructField()]
				if msg == "" {
					msg = "Invalid value."
				}
				errs[name] = msg
			}
		} else {
			errs["request"] = err.Error()
		}
	}

	// Today is the clock's calendar date, rebuilt in UTC so it compares
	// cleanly against the UTC-parsed form dates regardless of server zone.
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start, end := r.checkDate(errs, "start_date", r.StartDate, today), r.checkDate(errs, "end_date", r.EndDate, today)
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs["end_date"] = "End date must be after start date."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// checkDate parses and bounds-checks one date field. Returns the zero time if
// the field already failed validation.
func (r *Request) checkDate(errs ValidationError, field, value string, today time.Time) time.Time {
	if _, exists := errs[field]; exists || value == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		errs[field] = "Date must be in YYYY-MM-DD format."
		return time.Time{}
	}
	if t.Before(today) {
		if field == "start_date" {
			errs[field] = "Start date cannot be in the past."
		} else {
			errs[field] = "End date cannot be in the past."
		}
		return time.Time{}
	}
	return t
}

// applyDefaults fills optional fields the form pre-selects.
func (r *Request) applyDefaults() {
	if r.AccommodationType == "" {
		r.AccommodationType = AccommodationMidRange
	}
}
