package model

import "time"

type LogManualTripRequest struct {
	OwnerID  string    `json:"-" validate:"required"`
	DriverID string    `json:"driverId" validate:"required"`
	RouteID  string    `json:"routeId" validate:"required"`
	TripType string    `json:"tripType" validate:"omitempty,max=50"`
	Count    int       `json:"count" validate:"required,gt=0"`
	Date     time.Time `json:"date" validate:"required"`
}

type ListTripsRequest struct {
	OwnerID  string `json:"-" validate:"required"`
	DriverID string `json:"-" validate:"required"`
	Month    string `json:"-" validate:"required,len=7"`
}

type TripResponse struct {
	TripID   string    `json:"tripId"`
	DriverID string    `json:"driverId"`
	RouteID  string    `json:"routeId"`
	JobID    *string   `json:"jobId,omitempty"`
	TripType string    `json:"tripType"`
	Count    int       `json:"count"`
	Date     time.Time `json:"date"`
}
