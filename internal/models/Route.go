package models

import (
	"github.com/twpayne/go-geom"
)

// Route represents one scheduled one-way minibus trip segment.
// The catalog is fixed at startup; only the Seats counter mutates afterwards.
type Route struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Schedule string `json:"schedule"`

	// Origin/Destination are terminal points (SRID 4326, lng/lat order).
	// Controllers render them as GeoJSON; they are not marshalled directly.
	Origin      *geom.Point `json:"-"`
	Destination *geom.Point `json:"-"`

	Seats    int `json:"seats"`
	Capacity int `json:"capacity"`
}
