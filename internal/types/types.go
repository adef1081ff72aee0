// README: Common value objects shared across modules.
package types

// ID is an opaque entity identifier.
type ID string

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Address is a postal address as entered by the user; no validation
// beyond presence is performed.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Zero reports whether the address has no fields set.
func (a Address) Zero() bool {
	return a == Address{}
}
