// README: Plain-text itinerary export, the download offered on the itinerary view.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"yatra/internal/modules/trip"
)

// Filename returns the suggested download name for a plan's text export.
func Filename(plan *trip.TripPlan) string {
	return plan.Destination + "_itinerary.txt"
}

// Text renders the whole plan as the plain-text summary users download.
func Text(plan *trip.TripPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", plan.Title)
	fmt.Fprintf(&b, "Destination: %s\n", plan.Destination)
	fmt.Fprintf(&b, "Duration: %d days\n", plan.DurationDays)
	fmt.Fprintf(&b, "Budget: ₹%s\n", amount(plan.TotalEstimatedCost))
	fmt.Fprintf(&b, "Travelers: %d\n", plan.Travelers)
	b.WriteString("\nITINERARY:\n")

	for _, day := range plan.Itinerary {
		fmt.Fprintf(&b, "\nDay %d - %s\n", day.Day, day.Date)
		fmt.Fprintf(&b, "Location: %s\n", day.Location)
		for _, act := range day.Activities {
			fmt.Fprintf(&b, "• %s: %s at %s (₹%s)\n", act.Time, act.Activity, act.Location, amount(act.Cost))
		}
		if day.Accommodation != nil {
			fmt.Fprintf(&b, "Accommodation: %s (₹%s)\n", day.Accommodation.Name, amount(day.Accommodation.Cost))
		}
	}

	fmt.Fprintf(&b, "\nAI Recommendations:\n%s", plan.AIRecommendations)
	return strings.TrimSpace(b.String())
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
