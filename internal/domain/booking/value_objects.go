package booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MinTickets = 1
	MaxTickets = 10

	MaxCustomerNameLength = 255
)

var (
	ErrInvalidTicketCount = fmt.Errorf("ticket count must be between %d and %d", MinTickets, MaxTickets)
	ErrEmptyCustomerName  = errors.New("customer name is required")
	ErrCustomerNameLength = fmt.Errorf("customer name is too long (max %d characters)", MaxCustomerNameLength)
	ErrEmptyCustomerEmail = errors.New("customer email is required")
	ErrInvalidEmail       = errors.New("customer email is not a valid address")
)

var validate = validator.New()

type TicketCount struct {
	value int
}

func NewTicketCount(n int) (TicketCount, error) {
	if n < MinTickets || n > MaxTickets {
		return TicketCount{}, ErrInvalidTicketCount
	}
	return TicketCount{value: n}, nil
}

func (t TicketCount) Int() int {
	return t.value
}

// Customer is who the tickets are issued to.
type Customer struct {
	name  string
	email string
}

func NewCustomer(name, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	if len(name) > MaxCustomerNameLength {
		return Customer{}, ErrCustomerNameLength
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return Customer{}, ErrEmptyCustomerEmail
	}
	if err := validate.Var(email, "email"); err != nil {
		return Customer{}, ErrInvalidEmail
	}

	return Customer{name: name, email: email}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// ReconstructTicketCount and ReconstructCustomer rebuild stored values without re-validating them.
func ReconstructTicketCount(n int) TicketCount {
	return TicketCount{value: n}
}

func ReconstructCustomer(name, email string) Customer {
	return Customer{name: name, email: email}
}
