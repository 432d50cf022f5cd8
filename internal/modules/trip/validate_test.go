package trip

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func validRequest() Request {
	return Request{
		Source:            "Delhi",
		Destination:       "Goa",
		StartDate:         "2026-09-10",
		EndDate:           "2026-09-14",
		Travelers:         2,
		Budget:            50000,
		Themes:            []string{"heritage", "food"},
		AccommodationType: "mid-range",
	}
}

func TestValidateOK(t *testing.T) {
	req := validRequest()
	if errs := req.Validate(testNow); errs != nil {
		t.Errorf("expected valid request, got %v", errs)
	}
}

func TestValidateFieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Request)
		field  string
	}{
		{"missing source", func(r *Request) { r.Source = "" }, "source"},
		{"missing destination", func(r *Request) { r.Destination = "" }, "destination"},
		{"missing start date", func(r *Request) { r.StartDate = "" }, "start_date"},
		{"missing end date", func(r *Request) { r.EndDate = "" }, "end_date"},
		{"zero budget", func(r *Request) { r.Budget = 0 }, "budget"},
		{"negative budget", func(r *Request) { r.Budget = -100 }, "budget"},
		{"zero travelers", func(r *Request) { r.Travelers = 0 }, "travelers"},
		{"start date in the past", func(r *Request) { r.StartDate = "2026-08-30" }, "start_date"},
		{"end date in the past", func(r *Request) { r.EndDate = "2026-08-30" }, "end_date"},
		{"end before start", func(r *Request) { r.StartDate = "2026-09-14"; r.EndDate = "2026-09-10" }, "end_date"},
		{"bad date format", func(r *Request) { r.StartDate = "10/09/2026" }, "start_date"},
		{"unknown theme", func(r *Request) { r.Themes = []string{"space_travel"} }, "travel_themes"},
		{"unknown accommodation", func(r *Request) { r.AccommodationType = "capsule" }, "accommodation_type"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			errs := req.Validate(testNow)
			if errs == nil {
				t.Fatal("expected validation error")
			}
			if _, ok := errs[tc.field]; !ok {
				t.Errorf("expected error on field %q, got %v", tc.field, errs)
			}
		})
	}
}

func TestValidateStartTodayAllowed(t *testing.T) {
	req := validRequest()
	req.StartDate = "2026-09-01"
	req.EndDate = "2026-09-03"
	if errs := req.Validate(testNow); errs != nil {
		t.Errorf("start date of today should be allowed, got %v", errs)
	}
}

func TestValidateLocalClock(t *testing.T) {
	// Shortly after midnight in a non-UTC zone, yesterday's local date must
	// still be rejected and today's accepted.
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 9, 1, 1, 0, 0, 0, ist)

	req := validRequest()
	req.StartDate = "2026-08-31"
	errs := req.Validate(now)
	if errs == nil {
		t.Fatal("expected past start date to be rejected under a local clock")
	}
	if _, ok := errs["start_date"]; !ok {
		t.Errorf("expected error on start_date, got %v", errs)
	}

	req = validRequest()
	req.StartDate = "2026-09-01"
	req.EndDate = "2026-09-03"
	if errs := req.Validate(now); errs != nil {
		t.Errorf("local today should be allowed, got %v", errs)
	}
}

func TestApplyDefaults(t *testing.T) {
	req := Request{}
	req.applyDefaults()
	if req.AccommodationType != AccommodationMidRange {
		t.Errorf("AccommodationType = %q, want %q", req.AccommodationType, AccommodationMidRange)
	}
}
