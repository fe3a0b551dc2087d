package repository

import (
	"context"

	"fleet-service/src/internal/entity"
	"fleet-service/src/pkg/databases/mysql"
)

type RouteRepository struct {
	DB mysql.DBInterface
}

func NewRouteRepository(db mysql.DBInterface) *RouteRepository {
	return &RouteRepository{
		DB: db,
	}
}

func (r *RouteRepository) CreateRoute(ctx context.Context, route *entity.Route) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO routes (route_id, owner_id, name, stops, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`
	_, err = db.ExecContext(ctx, query, route.RouteID, route.OwnerID, route.Name, route.Stops)
	return err
}

func (r *RouteRepository) FindByID(ctx context.Context, id string) (*entity.Route, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var route entity.Route
	query := `
		SELECT route_id, owner_id, name, stops, created_at
		FROM routes
		WHERE route_id = ?
	`
	if err := db.GetContext(ctx, &route, query, id); err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *RouteRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Route, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var routes []entity.Route
	query := `
		SELECT route_id, owner_id, name, stops, created_at
		FROM routes
		WHERE owner_id = ?
		ORDER BY created_at
	`
	if err := db.SelectContext(ctx, &routes, query, ownerID); err != nil {
		return nil, err
	}
	return routes, nil
}
