package model

import "time"

type AssignJobRequest struct {
	OwnerID  string `json:"-" validate:"required"`
	DriverID string `json:"driverId" validate:"required"`
	RouteID  string `json:"routeId" validate:"required"`
}

type RequestJobRequest struct {
	DriverID string `json:"-" validate:"required"`
	RouteID  string `json:"routeId" validate:"required"`
}

type ApproveJobRequest struct {
	OwnerID string `json:"-" validate:"required"`
	JobID   string `json:"-" validate:"required"`
}

type LogStopActionRequest struct {
	DriverID string `json:"-" validate:"required"`
	JobID    string `json:"-" validate:"required"`
	Stop     string `json:"stop" validate:"required"`
	Action   string `json:"action" validate:"required,oneof=ARRIVED FULFILLED NOTE"`
	Notes    string `json:"notes" validate:"max=500"`
}

type CompleteJobRequest struct {
	DriverID string `json:"-" validate:"required"`
	JobID    string `json:"-" validate:"required"`
}

// GetJobRequest carries the caller's identity alongside the id: a job is
// visible only to its owner or its assigned driver.
type GetJobRequest struct {
	JobID    string `json:"-" validate:"required"`
	OwnerID  string `json:"-"`
	DriverID string `json:"-"`
}

type ListJobsRequest struct {
	OwnerID  string `json:"-"`
	DriverID string `json:"-"`
	Status   string `json:"-" validate:"omitempty,oneof=REQUESTED ASSIGNED ACCEPTED IN_PROGRESS COMPLETED"`
}

type JobEventResponse struct {
	Stop       string    `json:"stop"`
	Action     string    `json:"action"`
	Label      string    `json:"label"`
	Notes      string    `json:"notes,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type JobResponse struct {
	JobID           string             `json:"jobId"`
	OwnerID         string             `json:"ownerId"`
	DriverID        string             `json:"driverId"`
	RouteID         string             `json:"routeId"`
	RouteName       string             `json:"routeName"`
	Status          string             `json:"status"`
	AssignedAt      time.Time          `json:"assignedAt"`
	Events          []JobEventResponse `json:"events,omitempty"`
	IncompleteStops []string           `json:"incompleteStops,omitempty"`
}
