package converter

import (
	"time"

	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/model"

	"github.com/google/uuid"
)

func JobToResponse(j *entity.Job, events []entity.JobEvent, incompleteStops []string) *model.JobResponse {
	resp := &model.JobResponse{
		JobID:           j.JobID,
		OwnerID:         j.OwnerID,
		DriverID:        j.DriverID,
		RouteID:         j.RouteID,
		RouteName:       j.RouteName,
		Status:          j.Status,
		AssignedAt:      j.AssignedAt,
		IncompleteStops: incompleteStops,
	}
	for _, e := range events {
		resp.Events = append(resp.Events, model.JobEventResponse{
			Stop:       e.StopName,
			Action:     e.Action,
			Label:      e.Label,
			Notes:      e.Notes,
			OccurredAt: e.OccurredAt,
		})
	}
	return resp
}

func JobToStatusEvent(j *entity.Job, oldStatus string) *model.JobStatusEvent {
	return &model.JobStatusEvent{
		EventID:   uuid.NewString(),
		JobID:     j.JobID,
		OwnerID:   j.OwnerID,
		DriverID:  j.DriverID,
		RouteID:   j.RouteID,
		OldStatus: oldStatus,
		NewStatus: j.Status,
		ChangedAt: time.Now(),
	}
}
