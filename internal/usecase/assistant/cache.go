package assistant

import (
	"context"

	"ticket-booking/internal/domain/intent"
)

// NoopIntentCache never remembers anything.
type NoopIntentCache struct{}

func (NoopIntentCache) Get(context.Context, string) (intent.SearchIntent, bool, error) {
	return intent.SearchIntent{}, false, nil
}

func (NoopIntentCache) Set(context.Context, string, intent.SearchIntent) error {
	return nil
}
