package store

import "time"

// Store is one site of the chain. Latitude/Longitude form the geofence
// reference coordinate; both nil means the store is not geocoded and clock
// events for it are accepted ungated.
type Store struct {
	ID           string
	Name         string
	Timezone     string // IANA name, e.g. "Asia/Bangkok"
	Latitude     *float64
	Longitude    *float64
	RadiusMeters int
	IsHeadOffice bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultRadiusMeters is the geofence radius applied when a store row has no
// explicit radius configured.
const DefaultRadiusMeters = 100

// Geofenced reports whether the store carries a reference coordinate.
func (s Store) Geofenced() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// Location resolves the site time zone, falling back to UTC when the stored
// name does not load.
func (s Store) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
