package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mwhite7112/woodpantry-rates/internal/shipping"
)

const (
	DefaultShippoBaseURL = "https://api.goshippo.com"
	defaultMockDelay     = 1200 * time.Millisecond
)

// ShippoClient calls the Shippo shipment endpoint to obtain rate quotes.
type ShippoClient struct {
	baseURL    string
	httpClient *http.Client
	mockDelay  time.Duration
}

type ShippoOption func(*ShippoClient)

// WithMockDelay overrides the simulated latency of mock mode.
func WithMockDelay(d time.Duration) ShippoOption {
	return func(c *ShippoClient) { c.mockDelay = d }
}

func NewShippoClient(baseURL string, httpClient *http.Client, opts ...ShippoOption) *ShippoClient {
	if baseURL == "" {
		baseURL = DefaultShippoBaseURL
	}
	c := &ShippoClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		mockDelay:  defaultMockDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type createShipmentRequest struct {
	AddressFrom shipping.Address  `json:"address_from"`
	AddressTo   shipping.Address  `json:"address_to"`
	Parcels     []shipping.Parcel `json:"parcels"`
	Async       bool              `json:"async"`
}

// FetchRates creates a shipment and returns the rates Shippo quoted for it.
// A blank token selects mock mode: no request is made and the static mock
// rates are returned after a simulated delay.
func (c *ShippoClient) FetchRates(ctx context.Context, sender, receiver shipping.Address, parcel shipping.Parcel, token string) (shipping.ShipmentResponse, error) {
	if shipping.IsMockCredential(token) {
		return c.mockShipment(), nil
	}

	body, err := json.Marshal(createShipmentRequest{
		AddressFrom: sender,
		AddressTo:   receiver,
		Parcels:     []shipping.Parcel{parcel},
		Async:       false,
	})
	if err != nil {
		return shipping.ShipmentResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/shipments/", bytes.NewReader(body))
	if err != nil {
		return shipping.ShipmentResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ShippoToken "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return shipping.ShipmentResponse{}, &shipping.TransportError{Service: "shippo", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		detail := errorDetail(raw)
		slog.Error("shippo api error", "status", resp.StatusCode, "body", detail)
		return shipping.ShipmentResponse{}, &shipping.RateRetrievalError{
			StatusCode: resp.StatusCode,
			Body:       detail,
		}
	}

	var shipment shipping.ShipmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&shipment); err != nil {
		return shipping.ShipmentResponse{}, &shipping.MalformedResponseError{
			Service: "shippo",
			Err:     fmt.Errorf("decode shipment: %w", err),
		}
	}
	return shipment, nil
}

// mockShipment simulates the upstream latency and returns the static rates.
// The wait ignores cancellation; mock mode never fails.
func (c *ShippoClient) mockShipment() shipping.ShipmentResponse {
	slog.Warn("no shippo api token provided, returning mock rates")

	time.Sleep(c.mockDelay)

	return shipping.ShipmentResponse{
		ObjectID: "mock_shipment_" + uuid.NewString(),
		Status:   "SUCCESS",
		Rates:    shipping.MockRates(),
	}
}

// errorDetail re-encodes a JSON error body compactly. Bodies that are not JSON
// are returned as trimmed text.
func errorDetail(raw []byte) string {
	var payload any
	if err := json.Unmarshal(raw, &payload); err == nil {
		if compact, err := json.Marshal(payload); err == nil {
			return string(compact)
		}
	}
	return strings.TrimSpace(string(raw))
}
