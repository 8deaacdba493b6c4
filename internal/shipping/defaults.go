package shipping

import "strings"

var DefaultSender = Address{
	Name:    "Shawn Ippotle",
	Street1: "215 Clayton St.",
	City:    "San Francisco",
	State:   "CA",
	Zip:     "94117",
	Country: "US",
	Email:   "shippo@goshippo.com",
}

var DefaultReceiver = Address{
	Name:    "Mr. Hippo",
	Street1: "965 Mission St",
	City:    "San Francisco",
	State:   "CA",
	Zip:     "94103",
	Country: "US",
	Email:   "mrhippo@goshippo.com",
}

var DefaultParcel = Parcel{
	Length:       "5",
	Width:        "5",
	Height:       "5",
	DistanceUnit: DistanceInches,
	Weight:       "2",
	MassUnit:     MassPounds,
}

const providerLogoBase = "https://shippo-static.s3.amazonaws.com/providers/75/"

var mockRates = []Rate{
	{
		ObjectID:        "rate_12345",
		Amount:          "5.50",
		Currency:        "USD",
		AmountLocal:     "5.50",
		CurrencyLocal:   "USD",
		Provider:        "USPS",
		ProviderImage75: providerLogoBase + "USPS.png",
		ServiceLevel:    ServiceLevel{Name: "Priority Mail"},
		EstimatedDays:   2,
		Attributes:      []string{},
	},
	{
		ObjectID:        "rate_67890",
		Amount:          "12.20",
		Currency:        "USD",
		AmountLocal:     "12.20",
		CurrencyLocal:   "USD",
		Provider:        "FedEx",
		ProviderImage75: providerLogoBase + "FedEx.png",
		ServiceLevel:    ServiceLevel{Name: "Ground"},
		EstimatedDays:   4,
		Attributes:      []string{},
	},
	{
		ObjectID:        "rate_54321",
		Amount:          "24.00",
		Currency:        "USD",
		AmountLocal:     "24.00",
		CurrencyLocal:   "USD",
		Provider:        "UPS",
		ProviderImage75: providerLogoBase + "UPS.png",
		ServiceLevel:    ServiceLevel{Name: "Next Day Air"},
		EstimatedDays:   1,
		Attributes:      []string{AttributeBestValue},
	},
}

// MockRates returns a fresh copy of the static rates served in mock mode.
func MockRates() []Rate {
	out := make([]Rate, len(mockRates))
	for i, r := range mockRates {
		r.Attributes = append([]string{}, r.Attributes...)
		out[i] = r
	}
	return out
}

// IsMockCredential reports whether token selects mock mode.
func IsMockCredential(token string) bool {
	return strings.TrimSpace(token) == ""
}
