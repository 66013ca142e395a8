package intent

import (
	"reflect"
	"strings"

	"ticket-booking/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const DefaultTicketCount = 1

// BookingExtraction is the JSON shape the extractor is asked to return. Every
// field may be null; EventName is informational since the event id comes from the caller.
type BookingExtraction struct {
	EventName       *string `json:"eventName"`
	NumberOfTickets *int    `json:"numberOfTickets"`
	CustomerName    *string `json:"customerName"`
	CustomerEmail   *string `json:"customerEmail"`
}

// BookingFields are the extracted values after presence checks.
type BookingFields struct {
	Tickets       int
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Resolve applies the presence rules. A null ticket count becomes 1; any other
// count is passed through unchecked. A null or blank name or email is reported as
// *errs.MissingFieldError for the first such field.
func (e BookingExtraction) Resolve() (BookingFields, error) {
	fields := BookingFields{
		Tickets:       DefaultTicketCount,
		CustomerName:  trimmed(e.CustomerName),
		CustomerEmail: trimmed(e.CustomerEmail),
	}
	if e.NumberOfTickets != nil {
		fields.Tickets = *e.NumberOfTickets
	}

	if err := validate.Struct(fields); err != nil {
		var verrs validator.ValidationErrors
		if errs.As(err, &verrs) && len(verrs) > 0 {
			return BookingFields{}, &errs.MissingFieldError{Field: verrs[0].Field()}
		}
		return BookingFields{}, errs.Wrap(err, "validate booking extraction")
	}
	return fields, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
