//go:build unit

package intent_test

import (
	"testing"

	"ticket-booking/internal/domain/intent"
	"ticket-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSearchIntentPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload intent.SearchIntentPayload
		want    intent.SearchIntent
	}{
		{
			name:    "category with value",
			payload: intent.SearchIntentPayload{SearchType: ptr("CATEGORY"), SearchValue: ptr("SPORTS")},
			want:    intent.SearchIntent{Type: intent.SearchByCategory, Value: "SPORTS"},
		},
		{
			name:    "lower-case type",
			payload: intent.SearchIntentPayload{SearchType: ptr("venue"), SearchValue: ptr(" Carnegie Hall ")},
			want:    intent.SearchIntent{Type: intent.SearchByVenue, Value: "Carnegie Hall"},
		},
		{
			name:    "date ignores value",
			payload: intent.SearchIntentPayload{SearchType: ptr("DATE"), SearchValue: ptr("next week")},
			want:    intent.SearchIntent{Type: intent.SearchByDate},
		},
		{
			name:    "name without value",
			payload: intent.SearchIntentPayload{SearchType: ptr("NAME")},
			want:    intent.GeneralSearch(),
		},
		{
			name:    "blank value",
			payload: intent.SearchIntentPayload{SearchType: ptr("NAME"), SearchValue: ptr("  ")},
			want:    intent.GeneralSearch(),
		},
		{
			name:    "unknown type",
			payload: intent.SearchIntentPayload{SearchType: ptr("PRICE"), SearchValue: ptr("cheap")},
			want:    intent.GeneralSearch(),
		},
		{
			name:    "missing type",
			payload: intent.SearchIntentPayload{SearchValue: ptr("jazz")},
			want:    intent.GeneralSearch(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.payload.Intent())
		})
	}
}

func TestBookingExtractionResolve(t *testing.T) {
	t.Run("all fields present", func(t *testing.T) {
		got, err := intent.BookingExtraction{
			NumberOfTickets: ptr(2),
			CustomerName:    ptr(" Ann "),
			CustomerEmail:   ptr("ann@example.com"),
		}.Resolve()
		require.NoError(t, err)
		assert.Equal(t, intent.BookingFields{Tickets: 2, CustomerName: "Ann", CustomerEmail: "ann@example.com"}, got)
	})

	t.Run("null ticket count defaults to one", func(t *testing.T) {
		got, err := intent.BookingExtraction{
			CustomerName:  ptr("Ann"),
			CustomerEmail: ptr("ann@example.com"),
		}.Resolve()
		require.NoError(t, err)
		assert.Equal(t, intent.DefaultTicketCount, got.Tickets)
	})

	t.Run("out-of-range ticket count is passed through", func(t *testing.T) {
		got, err := intent.BookingExtraction{
			NumberOfTickets: ptr(42),
			CustomerName:    ptr("Ann"),
			CustomerEmail:   ptr("ann@example.com"),
		}.Resolve()
		require.NoError(t, err)
		assert.Equal(t, 42, got.Tickets)
	})

	missing := []struct {
		name       string
		extraction intent.BookingExtraction
		field      string
	}{
		{
			name:       "null name",
			extraction: intent.BookingExtraction{CustomerEmail: ptr("x@y.com")},
			field:      "customerName",
		},
		{
			name:       "blank name",
			extraction: intent.BookingExtraction{CustomerName: ptr("   "), CustomerEmail: ptr("x@y.com")},
			field:      "customerName",
		},
		{
			name:       "null email",
			extraction: intent.BookingExtraction{CustomerName: ptr("Ann")},
			field:      "customerEmail",
		},
		{
			name:       "both missing reports name first",
			extraction: intent.BookingExtraction{},
			field:      "customerName",
		},
	}
	for _, tt := range missing {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.extraction.Resolve()
			require.ErrorIs(t, err, errs.ErrMissingRequiredField)

			var mf *errs.MissingFieldError
			require.True(t, errs.As(err, &mf))
			assert.Equal(t, tt.field, mf.Field)
		})
	}
}
