package entity

import "github.com/google/uuid"

// City is the geographic unit every listing is scoped to. Cities are managed
// by operations and are never deleted; inactive cities are hidden from all
// scoped queries.
type City struct {
	ID        uuid.UUID
	Name      string
	State     string
	Country   string
	Latitude  float64
	Longitude float64
	Timezone  string
	Active    bool
}
