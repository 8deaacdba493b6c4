package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/woodpantry-rates/internal/db"
	"github.com/mwhite7112/woodpantry-rates/internal/mocks"
	"github.com/mwhite7112/woodpantry-rates/internal/shipping"
)

func TestRecordQuote_Success(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	svc := NewHistoryService(mockQ)

	rates := shipping.MockRates()
	raw, err := json.Marshal(rates)
	require.NoError(t, err)

	mockQ.EXPECT().CreateRateQuote(mock.Anything, db.CreateRateQuoteParams{
		ShipmentID: "mock_shipment_1",
		Status:     "success",
		Mock:       true,
		RateCount:  3,
		Rates:      raw,
	}).Return(db.RateQuote{ID: uuid.New()}, nil)

	err = svc.RecordQuote(context.Background(), shipping.Quote{
		ShipmentID: "mock_shipment_1",
		Status:     shipping.StatusSuccess,
		Mock:       true,
		Rates:      rates,
	})
	require.NoError(t, err)
}

func TestRecordQuote_FailureStoresEmptyRateList(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	svc := NewHistoryService(mockQ)

	mockQ.EXPECT().CreateRateQuote(mock.Anything, db.CreateRateQuoteParams{
		Status: "error",
		Error:  "boom",
		Rates:  json.RawMessage("[]"),
	}).Return(db.RateQuote{}, errors.New("connection refused"))

	err := svc.RecordQuote(context.Background(), shipping.Quote{Status: shipping.StatusError, Error: "boom"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create rate quote")
}

func TestListQuotes_ClampsLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want int32
	}{
		{0, 20},
		{-5, 20},
		{7, 7},
		{500, 100},
	}

	for _, tc := range tests {
		mockQ := mocks.NewMockQuerier(t)
		svc := NewHistoryService(mockQ)
		mockQ.EXPECT().ListRateQuotes(mock.Anything, tc.want).Return([]db.RateQuote{{CreatedAt: time.Now()}}, nil)

		quotes, err := svc.ListQuotes(context.Background(), tc.in)
		require.NoError(t, err)
		assert.Len(t, quotes, 1)
	}
}

func TestListQuotes_ReturnsEmptySliceOnNil(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	svc := NewHistoryService(mockQ)
	mockQ.EXPECT().ListRateQuotes(mock.Anything, int32(20)).Return(nil, nil)

	quotes, err := svc.ListQuotes(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, quotes)
	assert.Empty(t, quotes)
}
