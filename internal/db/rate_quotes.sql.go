package db

import (
	"context"
	"encoding/json"
)

const createRateQuote = `-- name: CreateRateQuote :one
INSERT INTO rate_quotes (shipment_id, status, mock, rate_count, error, rates)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, shipment_id, status, mock, rate_count, error, rates, created_at
`

type CreateRateQuoteParams struct {
	ShipmentID string          `json:"shipment_id"`
	Status     string          `json:"status"`
	Mock       bool            `json:"mock"`
	RateCount  int32           `json:"rate_count"`
	Error      string          `json:"error"`
	Rates      json.RawMessage `json:"rates"`
}

func (q *Queries) CreateRateQuote(ctx context.Context, arg CreateRateQuoteParams) (RateQuote, error) {
	row := q.db.QueryRowContext(ctx, createRateQuote,
		arg.ShipmentID,
		arg.Status,
		arg.Mock,
		arg.RateCount,
		arg.Error,
		arg.Rates,
	)
	var i RateQuote
	err := row.Scan(
		&i.ID,
		&i.ShipmentID,
		&i.Status,
		&i.Mock,
		&i.RateCount,
		&i.Error,
		&i.Rates,
		&i.CreatedAt,
	)
	return i, err
}

const listRateQuotes = `-- name: ListRateQuotes :many
SELECT id, shipment_id, status, mock, rate_count, error, rates, created_at
FROM rate_quotes
ORDER BY created_at DESC
LIMIT $1
`

func (q *Queries) ListRateQuotes(ctx context.Context, limit int32) ([]RateQuote, error) {
	rows, err := q.db.QueryContext(ctx, listRateQuotes, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RateQuote
	for rows.Next() {
		var i RateQuote
		if err := rows.Scan(
			&i.ID,
			&i.ShipmentID,
			&i.Status,
			&i.Mock,
			&i.RateCount,
			&i.Error,
			&i.Rates,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
