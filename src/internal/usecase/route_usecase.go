package usecase

import (
	"context"
	"fmt"

	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/model/converter"
	"fleet-service/src/internal/repository"
	httpError "fleet-service/src/pkg/http-error"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"googlemaps.github.io/maps"
)

type RouteUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	RouteRepository *repository.RouteRepository
	MapsClient      *maps.Client
}

func NewRouteUseCase(
	logger log.Log,
	validate *validator.Validate,
	routeRepository *repository.RouteRepository,
	mapsClient *maps.Client,
) *RouteUseCase {
	return &RouteUseCase{
		Log:             logger,
		Validate:        validate,
		RouteRepository: routeRepository,
		MapsClient:      mapsClient,
	}
}

func (c *RouteUseCase) CreateRoute(ctx context.Context, request *model.CreateRouteRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("route-usecase", errObj.Message, "CreateRoute", utils.ConvertString(err))
		return result
	}

	stops := make(entity.StopList, 0, len(request.Destinations)+1)
	stops = append(stops, c.buildStop(ctx, request.Source, entity.StopKindSource))
	for _, dest := range request.Destinations {
		stops = append(stops, c.buildStop(ctx, dest, entity.StopKindDestination))
	}

	route := &entity.Route{
		RouteID: uuid.NewString(),
		OwnerID: request.OwnerID,
		Name:    request.Name,
		Stops:   stops,
	}
	if err := c.RouteRepository.CreateRoute(ctx, route); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create route"
		result.Error = errObj
		c.Log.Error("route-usecase", fmt.Sprintf("create route: %v", err), "CreateRoute", "")
		return result
	}

	c.Log.Info("route-usecase", "route created", "CreateRoute", route.RouteID)
	result.Data = converter.RouteToResponse(route)
	return result
}

// buildStop geocodes the stop address when a maps client is configured. A
// geocoding failure only means the stop is saved without coordinates.
func (c *RouteUseCase) buildStop(ctx context.Context, input model.StopInput, kind string) entity.RouteStop {
	stop := entity.RouteStop{Name: input.Name, Kind: kind}
	if c.MapsClient == nil || input.Address == "" {
		return stop
	}

	results, err := c.MapsClient.Geocode(ctx, &maps.GeocodingRequest{Address: input.Address})
	if err != nil || len(results) == 0 {
		c.Log.Error("route-usecase", fmt.Sprintf("geocode %q failed: %v", input.Address, err), "buildStop", "")
		return stop
	}

	lat := results[0].Geometry.Location.Lat
	lng := results[0].Geometry.Location.Lng
	stop.Lat = &lat
	stop.Lng = &lng
	return stop
}

func (c *RouteUseCase) ListRoutes(ctx context.Context, request *model.ListRoutesRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("route-usecase", errObj.Message, "ListRoutes", utils.ConvertString(err))
		return result
	}

	routes, err := c.RouteRepository.ListByOwner(ctx, request.OwnerID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list routes"
		result.Error = errObj
		c.Log.Error("route-usecase", fmt.Sprintf("list routes: %v", err), "ListRoutes", "")
		return result
	}

	responses := make([]model.RouteResponse, 0, len(routes))
	for i := range routes {
		responses = append(responses, *converter.RouteToResponse(&routes[i]))
	}
	result.Data = responses
	return result
}
