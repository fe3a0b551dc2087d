package converter

import (
	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/payout"

	"github.com/google/uuid"
)

func TripToResponse(t *entity.Trip) *model.TripResponse {
	return &model.TripResponse{
		TripID:   t.TripID,
		DriverID: t.DriverID,
		RouteID:  t.RouteID,
		JobID:    t.JobID,
		TripType: t.TripType,
		Count:    t.Count,
		Date:     t.TripDate,
	}
}

func TripsToResponse(trips []entity.Trip) []model.TripResponse {
	out := make([]model.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *TripToResponse(&trips[i]))
	}
	return out
}

// TripsToEntries strips persisted trips down to the aggregator's input shape.
func TripsToEntries(trips []entity.Trip) []payout.TripEntry {
	entries := make([]payout.TripEntry, 0, len(trips))
	for _, t := range trips {
		entries = append(entries, payout.TripEntry{
			TripType: t.TripType,
			Count:    t.Count,
			Date:     t.TripDate,
		})
	}
	return entries
}

func TripToEvent(t *entity.Trip) *model.TripRecordedEvent {
	return &model.TripRecordedEvent{
		EventID:  uuid.NewString(),
		TripID:   t.TripID,
		OwnerID:  t.OwnerID,
		DriverID: t.DriverID,
		JobID:    t.JobID,
		Count:    t.Count,
		TripDate: t.TripDate,
	}
}
