package entity

// Location is read-mostly reference data describing a spot on the festival
// map. Seeded at startup, never mutated through the API.
type Location struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	PostCount   int64   `json:"post_count"`
}
