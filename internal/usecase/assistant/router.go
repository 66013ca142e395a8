package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/domain/intent"
	"ticket-booking/internal/oracle"
	"ticket-booking/internal/pkg/config"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/internal/usecase/queries"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// FallbackMessage is returned whenever a conversational answer cannot be produced.
const FallbackMessage = "I apologize, but I encountered an error processing your request. Please try again or contact support."

// Assistant turns free text into catalog searches and bookings.
type Assistant interface {
	// TranslateSearchQuery never fails; every error degrades to a broader
	// listing or to FallbackMessage.
	TranslateSearchQuery(ctx context.Context, text string) string
	// TranslateBookingText surfaces every error: a booking is never made from guessed data.
	TranslateBookingText(ctx context.Context, text string, eventID uuid.UUID) (*shared.BookingDetails, error)
	Recommend(ctx context.Context, preferences string) string
}

// IntentCache remembers classifications of recent queries.
type IntentCache interface {
	Get(ctx context.Context, query string) (intent.SearchIntent, bool, error)
	Set(ctx context.Context, query string, si intent.SearchIntent) error
}

var _ Assistant = (*Router)(nil)

type Router struct {
	oracle       oracle.Client
	catalog      queries.EventQueries
	bookings     commands.BookingCommands
	cache        IntentCache
	listingLimit int
}

func NewRouter(
	client oracle.Client,
	catalog queries.EventQueries,
	bookings commands.BookingCommands,
	cache IntentCache,
	cfg config.AssistantConfig,
) *Router {
	return &Router{
		oracle:       client,
		catalog:      catalog,
		bookings:     bookings,
		cache:        cache,
		listingLimit: cfg.ListingLimit,
	}
}

func (r *Router) TranslateSearchQuery(ctx context.Context, text string) string {
	si := r.classify(ctx, text)

	evs, err := r.search(ctx, si)
	if err != nil {
		slog.Error("catalog search failed", "search_type", string(si.Type), "error", err.Error())
		return FallbackMessage
	}

	payload := fmt.Sprintf(searchPayloadFormat, text, FormatListing(evs, r.listingLimit))
	return r.converse(ctx, "search answer", payload)
}

func (r *Router) TranslateBookingText(ctx context.Context, text string, eventID uuid.UUID) (*shared.BookingDetails, error) {
	c, err := r.oracle.Complete(ctx, oracle.Prompt{
		Instruction: extractInstruction,
		Payload:     text,
		Format:      oracle.FormatJSON,
	})
	if err != nil {
		return nil, err
	}

	var extraction intent.BookingExtraction
	if err := oracle.DecodeJSON(c, &extraction); err != nil {
		return nil, err
	}
	fields, err := extraction.Resolve()
	if err != nil {
		return nil, err
	}

	return r.bookings.CreateBooking(ctx, commands.CreateBookingInput{
		EventID:         eventID,
		CustomerName:    fields.CustomerName,
		CustomerEmail:   fields.CustomerEmail,
		NumberOfTickets: fields.Tickets,
	})
}

func (r *Router) Recommend(ctx context.Context, preferences string) string {
	evs, err := r.catalog.ListAvailable(ctx)
	if err != nil {
		slog.Error("listing available events failed", "error", err.Error())
		return FallbackMessage
	}

	payload := fmt.Sprintf(recommendPayloadFormat, preferences, FormatListing(evs, r.listingLimit))
	return r.converse(ctx, "recommendation", payload)
}

// classify asks the oracle for a SearchIntent. Any failure means a general search.
func (r *Router) classify(ctx context.Context, text string) intent.SearchIntent {
	if si, ok, err := r.cache.Get(ctx, text); err != nil {
		slog.Warn("intent cache read failed", "error", err.Error())
	} else if ok {
		return si
	}

	c, err := r.oracle.Complete(ctx, oracle.Prompt{
		Instruction: classifyInstruction,
		Payload:     text,
		Format:      oracle.FormatJSON,
	})
	if err != nil {
		slog.Warn("search classification unavailable, using general search", "error", err.Error())
		return intent.GeneralSearch()
	}

	var payload intent.SearchIntentPayload
	if err := oracle.DecodeJSON(c, &payload); err != nil {
		slog.Warn("search classification malformed, using general search", "error", err.Error())
		return intent.GeneralSearch()
	}

	si := payload.Intent()
	if err := r.cache.Set(ctx, text, si); err != nil {
		slog.Warn("intent cache write failed", "error", err.Error())
	}
	return si
}

// search dispatches on the intent and widens to all available events when the
// targeted search fails.
func (r *Router) search(ctx context.Context, si intent.SearchIntent) ([]*event.Event, error) {
	var (
		evs []*event.Event
		err error
	)
	switch si.Type {
	case intent.SearchByName:
		evs, err = r.catalog.SearchByName(ctx, si.Value)
	case intent.SearchByCategory:
		evs, err = r.catalog.ListByCategory(ctx, si.Value)
	case intent.SearchByVenue:
		evs, err = r.catalog.SearchByVenue(ctx, si.Value)
	case intent.SearchByDate:
		evs, err = r.catalog.ListUpcoming(ctx)
	default:
		return r.catalog.ListAvailable(ctx)
	}
	if err != nil {
		slog.Warn("targeted search failed, listing available events",
			"search_type", string(si.Type),
			"error", err.Error())
		return r.catalog.ListAvailable(ctx)
	}
	return evs, nil
}

func (r *Router) converse(ctx context.Context, purpose, payload string) string {
	c, err := r.oracle.Complete(ctx, oracle.Prompt{
		Instruction: chatInstruction,
		Payload:     payload,
		Format:      oracle.FormatText,
	})
	if err != nil {
		slog.Warn("oracle call failed", "purpose", purpose, "error", err.Error())
		return FallbackMessage
	}
	answer := strings.TrimSpace(c.Text())
	if answer == "" {
		slog.Warn("oracle returned an empty answer", "purpose", purpose)
		return FallbackMessage
	}
	return answer
}
