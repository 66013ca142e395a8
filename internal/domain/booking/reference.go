package booking

import (
	"strings"

	"github.com/google/uuid"
)

const (
	ReferencePrefix    = "BK-"
	referenceBodyChars = 8
)

// Reference is the customer-facing booking identifier.
type Reference string

func (r Reference) String() string {
	return string(r)
}

// ParseReference normalises user input and accepts only BK- followed by eight
// hex digits; it does not prove the reference exists.
func ParseReference(raw string) (Reference, bool) {
	ref := strings.ToUpper(strings.TrimSpace(raw))
	body, ok := strings.CutPrefix(ref, ReferencePrefix)
	if !ok || len(body) != referenceBodyChars {
		return "", false
	}
	for _, r := range body {
		if !isUpperHex(r) {
			return "", false
		}
	}
	return Reference(ref), true
}

func isUpperHex(r rune) bool {
	return ('0' <= r && r <= '9') || ('A' <= r && r <= 'F')
}

// ReferenceGenerator mints references. Uniqueness is enforced by storage, not here.
type ReferenceGenerator interface {
	Next() Reference
}

type UUIDReferenceGenerator struct{}

func NewUUIDReferenceGenerator() *UUIDReferenceGenerator {
	return &UUIDReferenceGenerator{}
}

// Next takes the first 32 random bits of a v4 UUID.
func (g *UUIDReferenceGenerator) Next() Reference {
	body := strings.ToUpper(uuid.NewString()[:referenceBodyChars])
	return Reference(ReferencePrefix + body)
}
