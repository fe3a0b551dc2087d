package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StopKindSource      = "source"
	StopKindDestination = "destination"
)

// RouteStop is one point on a route. The first stop is always the water
// source; every following stop is a delivery destination.
type RouteStop struct {
	Name string   `json:"name"`
	Kind string   `json:"kind"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

// StopList is stored as a JSON column.
type StopList []RouteStop

func (s StopList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StopList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type %T for StopList", src)
	}
}

type Route struct {
	RouteID   string    `db:"route_id"`
	OwnerID   string    `db:"owner_id"`
	Name      string    `db:"name"`
	Stops     StopList  `db:"stops"`
	CreatedAt time.Time `db:"created_at"`
}

// StopNames returns the ordered stop names, source first.
func (r Route) StopNames() []string {
	names := make([]string, 0, len(r.Stops))
	for _, s := range r.Stops {
		names = append(names, s.Name)
	}
	return names
}

// StopByName finds a stop on the route.
func (r Route) StopByName(name string) (RouteStop, bool) {
	for _, s := range r.Stops {
		if s.Name == name {
			return s, true
		}
	}
	return RouteStop{}, false
}
