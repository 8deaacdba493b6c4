package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type RateQuote struct {
	ID         uuid.UUID       `json:"id"`
	ShipmentID string          `json:"shipment_id"`
	Status     string          `json:"status"`
	Mock       bool            `json:"mock"`
	RateCount  int32           `json:"rate_count"`
	Error      string          `json:"error"`
	Rates      json.RawMessage `json:"rates"`
	CreatedAt  time.Time       `json:"created_at"`
}
