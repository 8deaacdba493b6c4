package api

import (
	"fmt"

	"github.com/mwhite7112/woodpantry-rates/internal/service"
	"github.com/mwhite7112/woodpantry-rates/internal/shipping"
)

// stateView is the JSON rendering of the controller state. The credential
// itself is never echoed back.
type stateView struct {
	Status        shipping.Status                             `json:"status"`
	Error         string                                      `json:"error,omitempty"`
	Sender        shipping.Address                            `json:"sender"`
	Receiver      shipping.Address                            `json:"receiver"`
	Parcel        shipping.Parcel                             `json:"parcel"`
	HasCredential bool                                        `json:"has_credential"`
	RateCount     int                                         `json:"rate_count"`
	Rates         []rateView                                  `json:"rates"`
	Extraction    map[shipping.Target]service.ExtractionState `json:"extraction"`
}

type rateView struct {
	ID           string `json:"id"`
	Provider     string `json:"provider"`
	ProviderLogo string `json:"provider_logo"`
	ServiceLevel string `json:"service_level"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	Transit      string `json:"transit"`
	BestValue    bool   `json:"best_value"`
}

func newStateView(s service.State) stateView {
	rates := make([]rateView, 0, len(s.Rates))
	for _, r := range s.Rates {
		rates = append(rates, newRateView(r))
	}
	return stateView{
		Status:        s.Status,
		Error:         s.Error,
		Sender:        s.Sender,
		Receiver:      s.Receiver,
		Parcel:        s.Parcel,
		HasCredential: s.HasCredential,
		RateCount:     len(rates),
		Rates:         rates,
		Extraction:    s.Extraction,
	}
}

func newRateView(r shipping.Rate) rateView {
	return rateView{
		ID:           r.ObjectID,
		Provider:     r.Provider,
		ProviderLogo: r.ProviderImage75,
		ServiceLevel: r.ServiceLevel.Name,
		Amount:       r.Amount,
		Currency:     r.Currency,
		Transit:      transitLabel(r.EstimatedDays),
		BestValue:    r.HasAttribute(shipping.AttributeBestValue),
	}
}

func transitLabel(days int) string {
	if days == 0 {
		return "Transit time varied"
	}
	return fmt.Sprintf("Est. %d Days", days)
}
