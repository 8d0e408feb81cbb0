package models

// Location is a single gazetteer row as imported from the address reference CSV: the administrative
// names down to the town level, the block it was measured at and its geographic coordinates.
type Location struct {
	ID         int     `json:"id"`
	Prefecture string  `json:"prefecture"`
	City       string  `json:"city"`
	Town       string  `json:"town"`
	Koaza      string  `json:"koaza"`
	BlockLot   string  `json:"block_lot"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// Coordinate is a representative point of an administrative unit.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// City is a canonical city/ward name of a prefecture.
type City struct {
	Name       string      `json:"name"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}

// Town is a canonical town name of a city.
type Town struct {
	Name       string      `json:"name"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}
