package shipping

import "fmt"

// SetField edits a single address field by its JSON name.
func (a *Address) SetField(field, value string) error {
	switch field {
	case "name":
		a.Name = value
	case "street1":
		a.Street1 = value
	case "city":
		a.City = value
	case "state":
		a.State = value
	case "zip":
		a.Zip = value
	case "country":
		a.Country = value
	case "email":
		a.Email = value
	case "phone":
		a.Phone = value
	default:
		return fmt.Errorf("address %q: %w", field, ErrUnknownField)
	}
	return nil
}

// SetField edits a single parcel field by its JSON name. Unit values are not
// checked against the enumerations; the rates API rejects unknown units.
func (p *Parcel) SetField(field, value string) error {
	switch field {
	case "length":
		p.Length = value
	case "width":
		p.Width = value
	case "height":
		p.Height = value
	case "distance_unit":
		p.DistanceUnit = DistanceUnit(value)
	case "weight":
		p.Weight = value
	case "mass_unit":
		p.MassUnit = MassUnit(value)
	default:
		return fmt.Errorf("parcel %q: %w", field, ErrUnknownField)
	}
	return nil
}
