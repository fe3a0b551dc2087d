package converter

import (
	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/model"
)

func DriverToResponse(d *entity.Driver) *model.DriverResponse {
	return &model.DriverResponse{
		DriverID:     d.DriverID,
		FullName:     d.FullName,
		MobileNumber: d.MobileNumber,
		Status:       d.Status,
	}
}

func DriversToResponse(drivers []entity.Driver) []model.DriverResponse {
	out := make([]model.DriverResponse, 0, len(drivers))
	for i := range drivers {
		out = append(out, *DriverToResponse(&drivers[i]))
	}
	return out
}

func RouteToResponse(r *entity.Route) *model.RouteResponse {
	resp := &model.RouteResponse{
		RouteID: r.RouteID,
		Name:    r.Name,
	}
	for _, s := range r.Stops {
		resp.Stops = append(resp.Stops, model.StopResponse{
			Name: s.Name,
			Kind: s.Kind,
			Lat:  s.Lat,
			Lng:  s.Lng,
		})
	}
	return resp
}

func OwnerToResponse(o *entity.Owner) *model.OwnerResponse {
	return &model.OwnerResponse{
		OwnerID:      o.OwnerID,
		FullName:     o.FullName,
		Email:        o.Email,
		MobileNumber: o.MobileNumber,
	}
}
