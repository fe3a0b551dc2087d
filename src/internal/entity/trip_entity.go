package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// EventArchive is the immutable JobEvent snapshot stored on a Trip, kept as a
// JSON column.
type EventArchive []JobEvent

func (a EventArchive) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]JobEvent{})
	}
	return json.Marshal(a)
}

func (a *EventArchive) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported type %T for EventArchive", src)
	}
}

// Trip is the finalized ledger record of one completed delivery run. It is
// written once and never updated; monthly payout aggregation reads only trips.
type Trip struct {
	TripID    string       `db:"trip_id"`
	OwnerID   string       `db:"owner_id"`
	DriverID  string       `db:"driver_id"`
	RouteID   string       `db:"route_id"`
	JobID     *string      `db:"job_id"`
	TripType  string       `db:"trip_type"`
	Count     int          `db:"count"`
	TripDate  time.Time    `db:"trip_date"`
	Events    EventArchive `db:"events"`
	CreatedAt time.Time    `db:"created_at"`
}
