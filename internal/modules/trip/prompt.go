// README: Prompt and response-schema contract for itinerary generation.
package trip

import (
	"fmt"
	"strings"

	"yatra/internal/ai"
)

// BuildPrompt constructs the natural-language generation request from a
// validated form. durationDays is computed locally from the dates, never
// trusted from the model.
func BuildPrompt(req Request, durationDays int) string {
	themes := strings.Join(req.Themes, ", ")
	focus := "diverse experiences"
	if len(req.Themes) > 0 {
		focus = strings.Join(req.Themes, " and ") + " experiences"
	}

	return fmt.Sprintf(`Create a detailed %d-day travel itinerary from %s to %s, India for %d travelers. Include flight booking suggestions from source to destination and back.

Trip Details:
- Source: %s
- Destination: %s
- Duration: %d days (%s to %s)
- Budget: ₹%.0f total
- Travelers: %d
- Themes: %s
- Accommodation: %s
- Special requests: %s

Create a comprehensive itinerary with:
1. Flight recommendations (including suggested airlines, flight numbers, timings, and estimated costs) from %s to %s and back.
2. Day-by-day detailed schedule with timings
3. Specific activities, attractions, and experiences
4. Accommodation recommendations for each night
5. Transportation between locations (other than flights)
6. Meal suggestions including local cuisine
7. Realistic cost estimates for each activity
8. Travel tips and recommendations
9. Consider weather, local festivals, and best times to visit

Focus on %s.
Make it authentic, practical, and within the specified budget.`,
		durationDays, req.Source, req.Destination, req.Travelers,
		req.Source, req.Destination,
		durationDays, req.StartDate, req.EndDate,
		req.Budget, req.Travelers, themes, req.AccommodationType, req.AdditionalRequests,
		req.Source, req.Destination,
		focus,
	)
}

// GeneratedItinerary is the model's answer to the itinerary schema.
type GeneratedItinerary struct {
	Flights            *Flights      `json:"flights"`
	Itinerary          []DayPlan     `json:"itinerary"`
	TotalEstimatedCost float64       `json:"total_estimated_cost"`
	CostBreakdown      CostBreakdown `json:"cost_breakdown"`
	AIRecommendations  string        `json:"ai_recommendations"`
}

func flightLegSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"airline":           map[string]any{"type": "string"},
			"flight_number":     map[string]any{"type": "string"},
			"departure_airport": map[string]any{"type": "string"},
			"arrival_airport":   map[string]any{"type": "string"},
			"departure_time":    map[string]any{"type": "string"},
			"arrival_time":      map[string]any{"type": "string"},
			"duration":          map[string]any{"type": "string"},
			"cost":              map[string]any{"type": "number"},
		},
	}
}

// ResponseSchema is the JSON contract the model must follow when generating
// an itinerary. Shapes mirror the TripPlan data model.
func ResponseSchema() ai.Schema {
	return ai.Schema{
		"type": "object",
		"properties": map[string]any{
			"flights": map[string]any{
				"type":        "object",
				"description": "Flight details",
				"properties": map[string]any{
					"departure_flight":  flightLegSchema(),
					"return_flight":     flightLegSchema(),
					"total_flight_cost": map[string]any{"type": "number"},
				},
			},
			"itinerary": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day":      map[string]any{"type": "number"},
						"date":     map[string]any{"type": "string"},
						"location": map[string]any{"type": "string"},
						"activities": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"time":     map[string]any{"type": "string"},
									"activity": map[string]any{"type": "string"},
									"location": map[string]any{"type": "string"},
									"cost":     map[string]any{"type": "number"},
									"duration": map[string]any{"type": "string"},
									"type":     map[string]any{"type": "string"},
								},
							},
						},
						"accommodation": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"name":     map[string]any{"type": "string"},
								"type":     map[string]any{"type": "string"},
								"cost":     map[string]any{"type": "number"},
								"location": map[string]any{"type": "string"},
							},
						},
						"total_cost": map[string]any{"type": "number"},
					},
				},
			},
			"total_estimated_cost": map[string]any{"type": "number"},
			"cost_breakdown": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"accommodation": map[string]any{"type": "number"},
					"transport":     map[string]any{"type": "number"},
					"activities":    map[string]any{"type": "number"},
					"meals":         map[string]any{"type": "number"},
					"miscellaneous": map[string]any{"type": "number"},
				},
			},
			"ai_recommendations": map[string]any{"type": "string"},
		},
	}
}
