package model

import "time"

// Event is anything publishable through the generic messaging producer.
type Event interface {
	GetId() string
}

type JobStatusEvent struct {
	EventID   string    `json:"event_id"`
	JobID     string    `json:"job_id"`
	OwnerID   string    `json:"owner_id"`
	DriverID  string    `json:"driver_id"`
	RouteID   string    `json:"route_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedAt time.Time `json:"changed_at"`
}

func (e *JobStatusEvent) GetId() string {
	return e.EventID
}

type TripRecordedEvent struct {
	EventID  string    `json:"event_id"`
	TripID   string    `json:"trip_id"`
	OwnerID  string    `json:"owner_id"`
	DriverID string    `json:"driver_id"`
	JobID    *string   `json:"job_id,omitempty"`
	Count    int       `json:"count"`
	TripDate time.Time `json:"trip_date"`
}

func (e *TripRecordedEvent) GetId() string {
	return e.EventID
}
