package trip

import (
	"testing"
	"time"
)

func TestDurationDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-03-01", "2024-03-05", 5},
		{"2024-03-01", "2024-03-01", 1},
		{"2024-02-28", "2024-03-01", 3}, // leap year
		{"2024-12-30", "2025-01-02", 4},
	}
	for _, tc := range cases {
		start, err := time.Parse(DateLayout, tc.start)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.start, err)
		}
		end, err := time.Parse(DateLayout, tc.end)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.end, err)
		}
		if got := DurationDays(start, end); got != tc.want {
			t.Errorf("DurationDays(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusGenerated, StatusBooked, true},
		{StatusGenerated, StatusCompleted, false},
		{StatusDraft, StatusBooked, false},
		{StatusBooked, StatusGenerated, false},
		{StatusBooked, StatusBooked, false},
		{StatusCompleted, StatusBooked, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestHotelCount(t *testing.T) {
	plan := &TripPlan{
		Itinerary: []DayPlan{
			{Day: 1, Accommodation: &Accommodation{Name: "Taj Holiday Village"}},
			{Day: 2, Accommodation: &Accommodation{Name: "Taj Holiday Village"}},
			{Day: 3}, // departure day, no stay
		},
	}
	if got := plan.HotelCount(); got != 2 {
		t.Errorf("HotelCount() = %d, want 2", got)
	}
}
