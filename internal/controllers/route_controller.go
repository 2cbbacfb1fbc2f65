package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"transconnect/internal/models"
)

// RouteResponse mirrors models.Route with terminal points rendered as
// GeoJSON strings and as the "13.4462° N, 121.8354° E" display labels
// the booking screens show.
type RouteResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Schedule    string `json:"schedule"`
	StartGPS    string `json:"start_gps"`
	EndGPS      string `json:"end_gps"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Seats       int    `json:"seats"`
	Capacity    int    `json:"capacity"`
}

func toRouteResponse(route models.Route) RouteResponse {
	origin, _ := pointToGeoJSON(route.Origin)
	dest, _ := pointToGeoJSON(route.Destination)
	return RouteResponse{
		ID:          route.ID,
		Name:        route.Name,
		Schedule:    route.Schedule,
		StartGPS:    gpsLabel(route.Origin),
		EndGPS:      gpsLabel(route.Destination),
		Origin:      origin,
		Destination: dest,
		Seats:       route.Seats,
		Capacity:    route.Capacity,
	}
}

// pointToGeoJSON converts a terminal point into a GeoJSON string
func pointToGeoJSON(p *geom.Point) (string, error) {
	if p == nil {
		return "", nil
	}
	b, err := gjson.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// gpsLabel formats a point the way the booking screens print it.
func gpsLabel(p *geom.Point) string {
	if p == nil {
		return ""
	}
	lat, lng := p.Y(), p.X()
	ns := "N"
	if lat < 0 {
		ns, lat = "S", -lat
	}
	ew := "E"
	if lng < 0 {
		ew, lng = "W", -lng
	}
	return fmt.Sprintf("%.4f° %s, %.4f° %s", lat, ns, lng, ew)
}

// ListRoutes returns the full catalog snapshot, ordered by route id.
func (h *Handler) ListRoutes(c *gin.Context) {
	routes := h.Ledger.Routes()
	routeResponses := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		routeResponses = append(routeResponses, toRouteResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"routes": routeResponses})
}

// RouteMap returns a GeoJSON feature joining a route's terminals, for
// the client's map view. Display only: nothing here feeds back into
// booking state.
func (h *Handler) RouteMap(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid route id"})
		return
	}

	route, err := h.Ledger.Route(uint(id))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	if route.Origin == nil || route.Destination == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "route has no geometry"})
		return
	}

	line := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{
		route.Origin.Coords(),
		route.Destination.Coords(),
	})
	feature := gjson.Feature{
		ID:       strconv.FormatUint(uint64(route.ID), 10),
		Geometry: line,
		Properties: map[string]interface{}{
			"name":     route.Name,
			"schedule": route.Schedule,
		},
	}
	b, err := feature.MarshalJSON()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not encode route geometry"})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", b)
}
