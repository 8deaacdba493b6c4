package db

import (
	"context"
)

type Querier interface {
	CreateRateQuote(ctx context.Context, arg CreateRateQuoteParams) (RateQuote, error)
	ListRateQuotes(ctx context.Context, limit int32) ([]RateQuote, error)
}

var _ Querier = (*Queries)(nil)
