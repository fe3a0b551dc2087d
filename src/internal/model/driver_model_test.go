package model

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestUpdateLocationRequestAcceptsZeroCoordinates(t *testing.T) {
	validate := validator.New()

	request := UpdateLocationRequest{
		DriverID:  "driver-1",
		OwnerID:   "owner-1",
		Latitude:  0,
		Longitude: 0,
	}
	assert.NoError(t, validate.Struct(request))
}

func TestUpdateLocationRequestRejectsOutOfRange(t *testing.T) {
	validate := validator.New()

	tests := []UpdateLocationRequest{
		{DriverID: "driver-1", OwnerID: "owner-1", Latitude: 91, Longitude: 0},
		{DriverID: "driver-1", OwnerID: "owner-1", Latitude: -91, Longitude: 0},
		{DriverID: "driver-1", OwnerID: "owner-1", Latitude: 0, Longitude: 181},
		{DriverID: "driver-1", OwnerID: "owner-1", Latitude: 0, Longitude: -181},
	}
	for _, request := range tests {
		assert.Error(t, validate.Struct(request), "lat=%v lng=%v", request.Latitude, request.Longitude)
	}
}
