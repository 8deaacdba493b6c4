package service

import (
	"context"

	"github.com/mwhite7112/woodpantry-rates/internal/shipping"
)

// RateFetcher abstracts the rates client for testing.
type RateFetcher interface {
	FetchRates(ctx context.Context, sender, receiver shipping.Address, parcel shipping.Parcel, token string) (shipping.ShipmentResponse, error)
}

// AddressExtractor abstracts LLM-based address extraction for testing.
type AddressExtractor interface {
	Extract(ctx context.Context, rawText string) (shipping.Address, error)
}

// QuoteRecorder keeps a record of completed rate requests.
type QuoteRecorder interface {
	RecordQuote(ctx context.Context, quote shipping.Quote) error
}

// QuoteNotifier announces completed rate requests to other services.
type QuoteNotifier interface {
	PublishRatesQuoted(ctx context.Context, quote shipping.Quote) error
}
