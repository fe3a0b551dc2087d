package model

import "time"

type RegisterDriverRequest struct {
	OwnerID      string `json:"-" validate:"required"`
	FullName     string `json:"fullName" validate:"required,max=100"`
	MobileNumber string `json:"mobileNumber" validate:"required,max=20"`
	Password     string `json:"password" validate:"required,min=8,max=100"`
}

type DriverResponse struct {
	DriverID     string `json:"driverId"`
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`
	Status       string `json:"status"`
}

// Zero is a legitimate coordinate (equator, prime meridian), so latitude and
// longitude carry range bounds only.
type UpdateLocationRequest struct {
	DriverID  string  `json:"-" validate:"required"`
	OwnerID   string  `json:"-" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type FleetPositionsRequest struct {
	OwnerID string `json:"-" validate:"required"`
}

type DriverPositionResponse struct {
	DriverID   string     `json:"driverId"`
	FullName   string     `json:"fullName"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	LastSeenAt *time.Time `json:"lastSeenAt,omitempty"`
}
