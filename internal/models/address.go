package models

// ParsedAddress is the decomposition of a free-form address string.
type ParsedAddress struct {
	Prefecture string   `json:"prefecture"`
	City       string   `json:"city"`
	Town       string   `json:"town"`
	Rest       string   `json:"rest"`
	Metadata   Metadata `json:"metadata"`
}

// Metadata describes how deep the decomposition got. Latitude and Longitude belong to the deepest
// resolved unit and are absent when that unit has no representative point.
type Metadata struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Depth     int      `json:"depth"`
}
