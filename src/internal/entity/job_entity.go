package entity

import "time"

type Job struct {
	JobID      string    `db:"job_id"`
	OwnerID    string    `db:"owner_id"`
	DriverID   string    `db:"driver_id"`
	RouteID    string    `db:"route_id"`
	RouteName  string    `db:"route_name"`
	Status     string    `db:"status"`
	AssignedAt time.Time `db:"assigned_at"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// JobEvent is one append-only timeline entry. EventID is the auto-increment
// insertion order, which doubles as the chronological order.
type JobEvent struct {
	EventID    int64     `db:"event_id" json:"eventId"`
	JobID      string    `db:"job_id" json:"jobId"`
	StopName   string    `db:"stop_name" json:"stopName"`
	Action     string    `db:"action" json:"action"`
	Label      string    `db:"label" json:"label"`
	Notes      string    `db:"notes" json:"notes"`
	OccurredAt time.Time `db:"occurred_at" json:"occurredAt"`
}

type JobFilter struct {
	OwnerID  *string
	DriverID *string
	Status   *string
}
