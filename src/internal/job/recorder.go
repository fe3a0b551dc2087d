package job

import (
	"time"

	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/payout"

	"github.com/google/uuid"
)

// BuildTripFromJob materializes the ledger record for a completed job. The
// trip counts as one delivery run and is dated by the job's assignment time,
// not the completion time, so monthly attribution matches the dispatch month.
// At-most-once recording is the caller's responsibility, guaranteed by the
// conditional IN_PROGRESS -> COMPLETED update winning exactly once.
func BuildTripFromJob(j entity.Job, events []entity.JobEvent) entity.Trip {
	jobID := j.JobID
	return entity.Trip{
		TripID:    uuid.NewString(),
		OwnerID:   j.OwnerID,
		DriverID:  j.DriverID,
		RouteID:   j.RouteID,
		JobID:     &jobID,
		TripType:  payout.TripTypeDelivery,
		Count:     1,
		TripDate:  j.AssignedAt,
		Events:    entity.EventArchive(events),
		CreatedAt: time.Now(),
	}
}

// BuildManualTrip materializes a hand-logged trip with no backing job.
func BuildManualTrip(ownerID, driverID, routeID, tripType string, count int, date time.Time) entity.Trip {
	if tripType == "" {
		tripType = payout.TripTypeDelivery
	}
	return entity.Trip{
		TripID:    uuid.NewString(),
		OwnerID:   ownerID,
		DriverID:  driverID,
		RouteID:   routeID,
		TripType:  tripType,
		Count:     count,
		TripDate:  date,
		CreatedAt: time.Now(),
	}
}
