//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/event"
	"ticket-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	ev := builder.NewEventBuilder().MustBuildDomain()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain(ev)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, ev.ID(), actual.EventID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.Equal(t, 3, actual.Tickets().Int())
		assert.Equal(t, int64(15000), actual.TotalAmount().Cents())
		assert.InDelta(t, 150.0, actual.TotalAmount().Dollars(), 0.0001)
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("ticket count and customer validation", func(t *testing.T) {
		runCases(t, ev, []testCase{
			{
				name:   "zero tickets",
				mutate: func(b *builder.BookingBuilder) { b.WithTickets(0) },
				errIs:  booking.ErrInvalidTicketCount,
			},
			{
				name:   "minimum tickets",
				mutate: func(b *builder.BookingBuilder) { b.WithTickets(booking.MinTickets) },
			},
			{
				name:   "maximum tickets",
				mutate: func(b *builder.BookingBuilder) { b.WithTickets(booking.MaxTickets) },
			},
			{
				name:   "above maximum tickets",
				mutate: func(b *builder.BookingBuilder) { b.WithTickets(booking.MaxTickets + 1) },
				errIs:  booking.ErrInvalidTicketCount,
			},
			{
				name:   "blank customer name",
				mutate: func(b *builder.BookingBuilder) { b.CustomerName = "   " },
				errIs:  booking.ErrEmptyCustomerName,
			},
			{
				name:   "customer name too long",
				mutate: func(b *builder.BookingBuilder) { b.CustomerName = strings.Repeat("x", booking.MaxCustomerNameLength+1) },
				errIs:  booking.ErrCustomerNameLength,
			},
			{
				name:   "missing email",
				mutate: func(b *builder.BookingBuilder) { b.CustomerEmail = "" },
				errIs:  booking.ErrEmptyCustomerEmail,
			},
			{
				name:   "malformed email",
				mutate: func(b *builder.BookingBuilder) { b.CustomerEmail = "not-an-email" },
				errIs:  booking.ErrInvalidEmail,
			},
			{
				name:   "missing reference",
				mutate: func(b *builder.BookingBuilder) { b.WithReference("") },
				errIs:  booking.ErrMissingReference,
			},
		})
	})

	t.Run("price is fixed at creation", func(t *testing.T) {
		cheap := builder.NewEventBuilder().WithPriceCents(1999).MustBuildDomain()
		actual, err := builder.NewBookingBuilder().WithTickets(2).BuildDomain(cheap)
		require.NoError(t, err)
		assert.Equal(t, int64(3998), actual.TotalAmount().Cents())
	})

	t.Run("cancel", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain(ev)
		require.NoError(t, err)

		later := actual.CreatedAt().Add(time.Hour)
		require.NoError(t, actual.Cancel(later))
		assert.True(t, actual.IsCancelled())
		assert.Equal(t, later, actual.UpdatedAt())

		require.ErrorIs(t, actual.Cancel(later), booking.ErrAlreadyCancelled)
	})

	t.Run("pending bookings cannot be cancelled", func(t *testing.T) {
		pending := booking.ReconstructBooking(
			uuid.New(), "BK-00000000", ev.ID(),
			booking.ReconstructCustomer("Ann", "ann@example.com"),
			booking.ReconstructTicketCount(1), booking.NewMoney(5000),
			booking.StatusPending, time.Now(), time.Now(),
		)
		require.ErrorIs(t, pending.Cancel(time.Now()), booking.ErrInvalidTransition)
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.CanTransitionTo(booking.StatusCancelled))
	assert.False(t, booking.StatusCancelled.CanTransitionTo(booking.StatusConfirmed))
	assert.False(t, booking.StatusPending.CanTransitionTo(booking.StatusConfirmed))
	assert.False(t, booking.StatusPending.CanTransitionTo(booking.StatusCancelled))
	assert.True(t, booking.StatusPending.IsValid())
	assert.False(t, booking.Status("REFUNDED").IsValid())
}

func runCases(t *testing.T, ev *event.Event, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain(ev)

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
