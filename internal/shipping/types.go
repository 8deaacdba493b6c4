package shipping

import "encoding/json"

// DistanceUnit is the unit parcel dimensions are expressed in.
type DistanceUnit string

const (
	DistanceInches      DistanceUnit = "in"
	DistanceCentimeters DistanceUnit = "cm"
)

// MassUnit is the unit parcel weight is expressed in.
type MassUnit string

const (
	MassPounds    MassUnit = "lb"
	MassKilograms MassUnit = "kg"
)

// Address is a postal address as entered by the user or produced by extraction.
// All fields are free text.
type Address struct {
	Name    string `json:"name"`
	Street1 string `json:"street1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Parcel dimensions and weight are kept as strings and forwarded to the rates
// API without numeric parsing.
type Parcel struct {
	Length       string       `json:"length"`
	Width        string       `json:"width"`
	Height       string       `json:"height"`
	DistanceUnit DistanceUnit `json:"distance_unit"`
	Weight       string       `json:"weight"`
	MassUnit     MassUnit     `json:"mass_unit"`
}

type ServiceLevel struct {
	Name  string `json:"name"`
	Terms string `json:"terms"`
}

// Rate is a priced shipping option for one provider/service level pair.
type Rate struct {
	ObjectID        string       `json:"object_id"`
	Amount          string       `json:"amount"`
	Currency        string       `json:"currency"`
	AmountLocal     string       `json:"amount_local"`
	CurrencyLocal   string       `json:"currency_local"`
	Provider        string       `json:"provider"`
	ProviderImage75 string       `json:"provider_image_75"`
	ServiceLevel    ServiceLevel `json:"servicelevel"`
	EstimatedDays   int          `json:"estimated_days"`
	DurationTerms   string       `json:"duration_terms,omitempty"`
	Attributes      []string     `json:"attributes"`
}

// AttributeBestValue marks a rate for special display. It is set by the data
// source and never computed here.
const AttributeBestValue = "BEST_VALUE"

// HasAttribute reports whether the rate carries the given attribute tag.
func (r Rate) HasAttribute(attr string) bool {
	for _, a := range r.Attributes {
		if a == attr {
			return true
		}
	}
	return false
}

// ShipmentResponse is the body returned by the shipment creation endpoint.
type ShipmentResponse struct {
	ObjectID string            `json:"object_id"`
	Status   string            `json:"status"`
	Rates    []Rate            `json:"rates"`
	Messages []json.RawMessage `json:"messages,omitempty"`
}

// Status is the application-wide status of the rate flow.
type Status string

const (
	StatusIdle          Status = "idle"
	StatusParsing       Status = "parsing"
	StatusFetchingRates Status = "fetching_rates"
	StatusSuccess       Status = "success"
	StatusError         Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// Target selects which address an edit or extraction applies to.
type Target string

const (
	TargetSender   Target = "sender"
	TargetReceiver Target = "receiver"
)

// ParseTarget validates a target name taken from user input.
func ParseTarget(s string) (Target, error) {
	switch t := Target(s); t {
	case TargetSender, TargetReceiver:
		return t, nil
	default:
		return "", &UnknownTargetError{Name: s}
	}
}

// Quote is the outcome of one completed rate request.
type Quote struct {
	ShipmentID string
	Status     Status
	Mock       bool
	Rates      []Rate
	Error      string
}
