package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("event name cannot be empty")
	ErrEmptyVenue       = errors.New("event venue cannot be empty")
	ErrNameTooLong      = errors.New("event name is too long (max 255 characters)")
	ErrNegativePrice    = errors.New("ticket price cannot be negative")
	ErrInvalidCapacity  = errors.New("total seats must be positive")
	ErrSeatsOutOfBounds = errors.New("available seats must be between 0 and total seats")
	ErrMissingDate      = errors.New("event date is required")
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
)

// Event is the catalog entry a booking draws seats from. The seat counters are
// written only by the inventory ledger; the catalog treats them as read-only.
type Event struct {
	id             uuid.UUID
	name           string
	venue          string
	date           time.Time
	priceCents     int64
	totalSeats     int
	availableSeats int
	category       Category
	description    string
}

type NewEventParams struct {
	Name        string
	Venue       string
	Date        time.Time
	PriceCents  int64
	TotalSeats  int
	Category    string
	Description string
}

// NewEvent creates an event whose whole capacity is still on sale.
func NewEvent(p NewEventParams) (*Event, error) {
	if p.TotalSeats <= 0 {
		return nil, ErrInvalidCapacity
	}
	ev := &Event{
		id:             uuid.New(),
		totalSeats:     p.TotalSeats,
		availableSeats: p.TotalSeats,
	}
	if err := ev.applyDetails(p); err != nil {
		return nil, err
	}
	return ev, nil
}

// Revise returns a copy with new descriptive details. Capacity and seat counts
// are kept, so p.TotalSeats is ignored; existing bookings keep the price they were sold at.
func (e *Event) Revise(p NewEventParams) (*Event, error) {
	cp := *e
	if err := cp.applyDetails(p); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (e *Event) applyDetails(p NewEventParams) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	venue := strings.TrimSpace(p.Venue)
	if venue == "" {
		return ErrEmptyVenue
	}
	if p.Date.IsZero() {
		return ErrMissingDate
	}
	if p.PriceCents < 0 {
		return ErrNegativePrice
	}

	description := strings.TrimSpace(p.Description)
	if len(description) > MaxDescriptionLength {
		description = description[:MaxDescriptionLength]
	}

	e.name = name
	e.venue = venue
	e.date = p.Date
	e.priceCents = p.PriceCents
	e.category = NewCategory(p.Category)
	e.description = description
	return nil
}

func ReconstructEvent(
	id uuid.UUID,
	name, venue string,
	date time.Time,
	priceCents int64,
	totalSeats, availableSeats int,
	category Category,
	description string,
) (*Event, error) {
	if availableSeats < 0 || availableSeats > totalSeats {
		return nil, ErrSeatsOutOfBounds
	}
	return &Event{
		id:             id,
		name:           name,
		venue:          venue,
		date:           date,
		priceCents:     priceCents,
		totalSeats:     totalSeats,
		availableSeats: availableSeats,
		category:       category,
		description:    description,
	}, nil
}

// WithAvailableSeats returns a copy carrying a ledger-reported seat count.
func (e *Event) WithAvailableSeats(n int) *Event {
	cp := *e
	cp.availableSeats = n
	return &cp
}

func (e *Event) HasAvailability() bool {
	return e.availableSeats > 0
}

func (e *Event) ID() uuid.UUID         { return e.id }
func (e *Event) Name() string          { return e.name }
func (e *Event) Venue() string         { return e.venue }
func (e *Event) Date() time.Time       { return e.date }
func (e *Event) PriceCents() int64     { return e.priceCents }
func (e *Event) TotalSeats() int       { return e.totalSeats }
func (e *Event) AvailableSeats() int   { return e.availableSeats }
func (e *Event) Category() Category    { return e.category }
func (e *Event) Description() string   { return e.description }
func (e *Event) PriceDollars() float64 { return float64(e.priceCents) / 100.0 }
