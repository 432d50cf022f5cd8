// README: TripPlan aggregate, nested itinerary types, and status definitions.
package trip

import (
	"time"

	"yatra/internal/types"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusGenerated Status = "generated"
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
)

// AllowedTransitions represents the trip lifecycle as code. Plans are created
// as "generated"; only the booking agent moves them to "booked".
var AllowedTransitions = map[Status][]Status{
	StatusGenerated: {StatusBooked},
}

func CanTransition(from, to Status) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Accommodation tiers offered on the trip form.
const (
	AccommodationBudget   = "budget"
	AccommodationMidRange = "mid-range"
	AccommodationLuxury   = "luxury"
	AccommodationMixed    = "mixed"
)

// Activity types, used by the UI for icon selection only.
const (
	ActivityTypeAccommodation = "accommodation"
	ActivityTypeTransport     = "transport"
	ActivityTypeActivity      = "activity"
	ActivityTypeMeal          = "meal"
	ActivityTypeShopping      = "shopping"
)

// Themes selectable on the trip form.
var TravelThemes = []string{
	"heritage", "adventure", "nature", "food",
	"wellness", "nightlife", "photography", "shopping",
}

// TripPlan is the persisted itinerary record, the sole unit of persistence.
// DayPlan, Activity and Accommodation are serialized inline within it and
// have no independent identity.
type TripPlan struct {
	ID                   types.ID       `json:"id"`
	Title                string         `json:"title"`
	Source               string         `json:"source"`
	Destination          string         `json:"destination"`
	StartDate            string         `json:"start_date"`
	EndDate              string         `json:"end_date"`
	DurationDays         int            `json:"duration_days"`
	Budget               float64        `json:"budget"`
	BudgetPerPerson      float64        `json:"budget_per_person"`
	Travelers            int            `json:"travelers"`
	TravelThemes         []string       `json:"travel_themes"`
	AccommodationType    string         `json:"accommodation_type"`
	TransportPreferences []string       `json:"transport_preferences"`
	Flights              *Flights       `json:"flights,omitempty"`
	Itinerary            []DayPlan      `json:"itinerary"`
	TotalEstimatedCost   float64        `json:"total_estimated_cost"`
	CostBreakdown        CostBreakdown  `json:"cost_breakdown"`
	AIRecommendations    string         `json:"ai_recommendations"`
	Status               Status         `json:"status"`
	CreatedDate          string         `json:"created_date"`
}

type Flights struct {
	DepartureFlight FlightLeg `json:"departure_flight"`
	ReturnFlight    FlightLeg `json:"return_flight"`
	TotalFlightCost float64   `json:"total_flight_cost"`
}

type FlightLeg struct {
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flight_number"`
	DepartureAirport string  `json:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	Duration         string  `json:"duration"`
	Cost             float64 `json:"cost"`
}

type DayPlan struct {
	Day           int            `json:"day"`
	Date          string         `json:"date"`
	Location      string         `json:"location"`
	Activities    []Activity     `json:"activities"`
	Accommodation *Accommodation `json:"accommodation,omitempty"`
	TotalCost     float64        `json:"total_cost"`
}

type Activity struct {
	Time     string  `json:"time"`
	Activity string  `json:"activity"`
	Location string  `json:"location"`
	Cost     float64 `json:"cost"`
	Duration string  `json:"duration"`
	Type     string  `json:"type"`
}

type Accommodation struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Cost     float64 `json:"cost"`
	Location string  `json:"location"`
}

type CostBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Transport     float64 `json:"transport"`
	Activities    float64 `json:"activities"`
	Meals         float64 `json:"meals"`
	Miscellaneous float64 `json:"miscellaneous"`
}

// HotelCount returns the number of itinerary days with an accommodation.
func (p *TripPlan) HotelCount() int {
	n := 0
	for _, day := range p.Itinerary {
		if day.Accommodation != nil {
			n++
		}
	}
	return n
}

// DateLayout is the calendar-date wire format used throughout.
const DateLayout = "2006-01-02"

// DurationDays computes the inclusive day count between two dates.
func DurationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
