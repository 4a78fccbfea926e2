package order

import (
	"farmmarket/internal/pkg/errs"
)

// Address is the destination of an order's shipment. It is a value object:
// immutable and compared by value. Street and city are required; region and
// postal code are optional.
type Address struct {
	street     string
	city       string
	region     string
	postalCode string

	isConstructed bool
}

// NewAddress creates a shipping address. Street and city must not be empty.
func NewAddress(street, city, region, postalCode string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		street:        street,
		city:          city,
		region:        region,
		postalCode:    postalCode,
		isConstructed: true,
	}, nil
}

// Validate ensures the address was created via NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return errs.NewValueIsRequiredError("address must be created via NewAddress")
	}
	return nil
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// Region returns the region or province, possibly empty.
func (a Address) Region() string {
	return a.region
}

// PostalCode returns the postal code, possibly empty.
func (a Address) PostalCode() string {
	return a.postalCode
}
