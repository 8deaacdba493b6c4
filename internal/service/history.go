package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mwhite7112/woodpantry-rates/internal/db"
	"github.com/mwhite7112/woodpantry-rates/internal/shipping"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryService stores completed quotes. It is never read when answering a
// rate request.
type HistoryService struct {
	q db.Querier
}

func NewHistoryService(q db.Querier) *HistoryService {
	return &HistoryService{q: q}
}

func (s *HistoryService) RecordQuote(ctx context.Context, quote shipping.Quote) error {
	rates := quote.Rates
	if rates == nil {
		rates = []shipping.Rate{}
	}
	raw, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("marshal rates: %w", err)
	}

	_, err = s.q.CreateRateQuote(ctx, db.CreateRateQuoteParams{
		ShipmentID: quote.ShipmentID,
		Status:     quote.Status.String(),
		Mock:       quote.Mock,
		RateCount:  int32(len(quote.Rates)),
		Error:      quote.Error,
		Rates:      raw,
	})
	if err != nil {
		return fmt.Errorf("create rate quote: %w", err)
	}
	return nil
}

// ListQuotes returns the most recent quotes, newest first. limit is clamped
// to [1, 100]; zero selects the default of 20.
func (s *HistoryService) ListQuotes(ctx context.Context, limit int) ([]db.RateQuote, error) {
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	quotes, err := s.q.ListRateQuotes(ctx, int32(limit))
	if err != nil {
		return nil, err
	}
	if quotes == nil {
		return []db.RateQuote{}, nil
	}
	return quotes, nil
}
