package services

import (
	"net/url"

	"courier/internal/core/domain/model/kernel"
)

// directionsEndpoint is the standard Google Maps directions entry point.
const directionsEndpoint = "https://www.google.com/maps/dir/"

// DirectionsBuilder produces a driving-directions link for a delivery address.
// The console only builds the URL; opening it in a maps application is the
// caller's concern.
type DirectionsBuilder struct{}

// NewDirectionsBuilder creates a directions builder.
func NewDirectionsBuilder() DirectionsBuilder {
	return DirectionsBuilder{}
}

// URL returns a well-formed directions URL with the address text URL-encoded
// as the destination query parameter.
//
// Example:
//
//	builder := services.NewDirectionsBuilder()
//	link, err := builder.URL(order.Address())
//	// https://www.google.com/maps/dir/?api=1&destination=Toshkent%2C+Chilonzor...
func (DirectionsBuilder) URL(address kernel.Address) (string, error) {
	if err := address.Validate(); err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("api", "1")
	query.Set("destination", address.String())

	return directionsEndpoint + "?" + query.Encode(), nil
}
