package assistant

import (
	"fmt"
	"strings"

	"ticket-booking/internal/domain/event"
)

const (
	DefaultListingLimit = 20
	emptyListing        = "No events found."
	listingDateLayout   = "2006-01-02 15:04"
)

// FormatListing renders at most limit events, one per line, and notes how many
// were left out. This text is the only catalog data the oracle ever sees.
func FormatListing(evs []*event.Event, limit int) string {
	if len(evs) == 0 {
		return emptyListing + "\n"
	}
	if limit <= 0 {
		limit = DefaultListingLimit
	}

	var sb strings.Builder
	for i, ev := range evs {
		if i == limit {
			fmt.Fprintf(&sb, "…and %d more\n", len(evs)-limit)
			break
		}
		fmt.Fprintf(&sb, "- %s at %s on %s (Category: %s, Price: $%.2f, Available Seats: %d)\n",
			ev.Name(),
			ev.Venue(),
			ev.Date().Format(listingDateLayout),
			ev.Category(),
			ev.PriceDollars(),
			ev.AvailableSeats(),
		)
	}
	return sb.String()
}
