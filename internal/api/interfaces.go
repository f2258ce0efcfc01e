package api

import (
	"context"

	"github.com/neexbeast/travelsafe/internal/assistant"
	"github.com/neexbeast/travelsafe/internal/destination"
)

// LiveCache defines the cache operations needed by handlers.
type LiveCache interface {
	Get(ctx context.Context, location string) (*destination.LiveReport, error)
	Set(ctx context.Context, location string, report *destination.LiveReport) error
}

// LiveFetcher defines the external API aggregation needed by handlers.
type LiveFetcher interface {
	FetchAll(ctx context.Context, location, country string) (*destination.LiveReport, error)
}

// ContentSynthesizer produces the randomized parts of a destination page.
type ContentSynthesizer interface {
	Environment(name string) destination.Environment
	Profile(d destination.Destination) destination.SafetyProfile
}

// ChatAssistant answers travel-safety questions.
type ChatAssistant interface {
	Reply(ctx context.Context, prompt string) (assistant.Message, error)
	Greeting() assistant.Message
}
