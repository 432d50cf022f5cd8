// README: PDF itinerary export.
package export

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"yatra/internal/modules/trip"
)

// PDF renders the plan as a printable A4 document. Amounts use an "INR"
// prefix; the core PDF fonts have no rupee glyph.
func PDF(plan *trip.TripPlan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, plan.Title)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Destination: %s", plan.Destination))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Duration: %d days", plan.DurationDays))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Budget: INR %s", amount(plan.TotalEstimatedCost)))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Travelers: %d", plan.Travelers))
	pdf.Ln(10)

	for _, day := range plan.Itinerary {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d - %s", day.Day, day.Date))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Location: %s", day.Location))
		pdf.Ln(6)
		for _, act := range day.Activities {
			pdf.Cell(0, 6, fmt.Sprintf("- %s: %s at %s (INR %s)", act.Time, act.Activity, act.Location, amount(act.Cost)))
			pdf.Ln(5)
		}
		if day.Accommodation != nil {
			pdf.Cell(0, 6, fmt.Sprintf("Accommodation: %s (INR %s)", day.Accommodation.Name, amount(day.Accommodation.Cost)))
			pdf.Ln(5)
		}
		pdf.Ln(4)
	}

	if plan.AIRecommendations != "" {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, "AI Recommendations")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 5, plan.AIRecommendations, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
