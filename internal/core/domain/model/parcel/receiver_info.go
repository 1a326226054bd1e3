package parcel

import (
	"parcel/internal/pkg/errs"
)

// DefaultCountry is assumed when a delivery address omits the country.
const DefaultCountry = "Bangladesh"

// Address is the structured delivery destination. Street, city, and country
// are required; country falls back to DefaultCountry when omitted.
type Address struct {
	street  string
	city    string
	state   string
	zipCode string
	country string
}

// NewAddress creates a validated delivery address.
// State and zipCode are optional; an empty country defaults to DefaultCountry.
func NewAddress(street, city, state, zipCode, country string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("address.street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("address.city")
	}
	if country == "" {
		country = DefaultCountry
	}

	return Address{
		street:  street,
		city:    city,
		state:   state,
		zipCode: zipCode,
		country: country,
	}, nil
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the optional state or region.
func (a Address) State() string { return a.state }

// ZipCode returns the optional postal code.
func (a Address) ZipCode() string { return a.zipCode }

// Country returns the country, never empty for a constructed address.
func (a Address) Country() string { return a.country }

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	if a.street == "" || a.city == "" || a.country == "" {
		return errs.NewValueIsRequiredError("address must be created via NewAddress")
	}
	return nil
}

// ReceiverInfo is the contact snapshot captured at parcel creation. It is
// deliberately denormalized from the receiver's account so later profile
// edits do not rewrite delivery history.
type ReceiverInfo struct {
	name    string
	phone   string
	address Address
}

// NewReceiverInfo creates validated receiver contact information.
func NewReceiverInfo(name, phone string, address Address) (ReceiverInfo, error) {
	if name == "" {
		return ReceiverInfo{}, errs.NewValueIsRequiredError("receiverInfo.name")
	}
	if phone == "" {
		return ReceiverInfo{}, errs.NewValueIsRequiredError("receiverInfo.phone")
	}
	if err := address.Validate(); err != nil {
		return ReceiverInfo{}, err
	}

	return ReceiverInfo{
		name:    name,
		phone:   phone,
		address: address,
	}, nil
}

// Name returns the receiver's name as captured at creation.
func (r ReceiverInfo) Name() string { return r.name }

// Phone returns the receiver's phone as captured at creation.
func (r ReceiverInfo) Phone() string { return r.phone }

// Address returns the delivery destination.
func (r ReceiverInfo) Address() Address { return r.address }

// Validate ensures the info was created through NewReceiverInfo.
func (r ReceiverInfo) Validate() error {
	if r.name == "" || r.phone == "" {
		return errs.NewValueIsRequiredError("receiverInfo must be created via NewReceiverInfo")
	}
	return r.address.Validate()
}
