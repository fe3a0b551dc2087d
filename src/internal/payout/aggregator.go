package payout

import (
	"fmt"
	"time"
)

const (
	TripTypeDelivery = "delivery"
	TripTypeSupply   = "supply"
	TripTypeOther    = "other"
)

// TripEntry is one logged delivery event contributing to a month's total.
type TripEntry struct {
	TripType string
	Count    int
	Date     time.Time
}

// DayCount buckets a single day's trips by type. Unrecognized types land in
// Other so no logged trip is ever dropped from the aggregate.
type DayCount struct {
	Delivery int
	Supply   int
	Other    int
}

// MonthlyAggregate is derived, never persisted.
type MonthlyAggregate struct {
	DriverID   string
	MonthKey   string
	TotalTrips int
	PerDay     map[string]DayCount
}

// AggregateMonth sums trip entries falling inside the calendar month given by
// monthKey (YYYY-MM). Dates are compared in each entry's own location, which
// matches how trip dates are stored. Deterministic and side-effect free.
func AggregateMonth(driverID string, entries []TripEntry, monthKey string) (MonthlyAggregate, error) {
	if _, err := time.Parse("2006-01", monthKey); err != nil {
		return MonthlyAggregate{}, fmt.Errorf("invalid month key %q: %w", monthKey, err)
	}

	agg := MonthlyAggregate{
		DriverID: driverID,
		MonthKey: monthKey,
		PerDay:   make(map[string]DayCount),
	}

	for _, e := range entries {
		if e.Date.Format("2006-01") != monthKey {
			continue
		}
		agg.TotalTrips += e.Count

		day := e.Date.Format("2006-01-02")
		bucket := agg.PerDay[day]
		switch e.TripType {
		case TripTypeDelivery:
			bucket.Delivery += e.Count
		case TripTypeSupply:
			bucket.Supply += e.Count
		default:
			bucket.Other += e.Count
		}
		agg.PerDay[day] = bucket
	}

	return agg, nil
}
