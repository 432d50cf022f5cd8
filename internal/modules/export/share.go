// README: Share link and QR code for an itinerary.
package export

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"yatra/internal/modules/trip"
)

// ShareLink builds the public itinerary URL and the invite text that goes
// with it.
func ShareLink(publicURL string, plan *trip.TripPlan) (url, text string) {
	url = fmt.Sprintf("%s/ItineraryView?id=%s", strings.TrimRight(publicURL, "/"), plan.ID)
	text = fmt.Sprintf("Check out my %s trip itinerary!", plan.Destination)
	return url, text
}

// QR encodes the share URL as a 256px PNG.
func QR(url string) ([]byte, error) {
	return qrcode.Encode(url, qrcode.Medium, 256)
}
