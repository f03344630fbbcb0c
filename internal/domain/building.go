package domain

// A campus building with its map anchor point.
// Code is the short identifier the mobile client keys on (e.g. "H", "VL").
type Building struct {
	Code     string
	Name     string
	Campus   string
	Address  string
	Location Coordinate
}

// A campus reference point (SGW downtown, Loyola west-end).
type Campus struct {
	Code     string
	Name     string
	Location Coordinate
}
