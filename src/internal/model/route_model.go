package model

type StopInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"max=250"`
}

type CreateRouteRequest struct {
	OwnerID      string      `json:"-" validate:"required"`
	Name         string      `json:"name" validate:"required,max=100"`
	Source       StopInput   `json:"source" validate:"required"`
	Destinations []StopInput `json:"destinations" validate:"required,min=1,dive"`
}

type ListRoutesRequest struct {
	OwnerID string `json:"-" validate:"required"`
}

type StopResponse struct {
	Name string   `json:"name"`
	Kind string   `json:"kind"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

type RouteResponse struct {
	RouteID string         `json:"routeId"`
	Name    string         `json:"name"`
	Stops   []StopResponse `json:"stops"`
}
