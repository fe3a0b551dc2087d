package repository

import (
	"context"
	"time"

	"fleet-service/src/internal/entity"
	"fleet-service/src/pkg/databases/mysql"
)

type TripRepository struct {
	DB mysql.DBInterface
}

func NewTripRepository(db mysql.DBInterface) *TripRepository {
	return &TripRepository{
		DB: db,
	}
}

func (r *TripRepository) InsertTrip(ctx context.Context, trip *entity.Trip) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO trips (trip_id, owner_id, driver_id, route_id, job_id, trip_type, count, trip_date, events, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	_, err = db.ExecContext(ctx, query,
		trip.TripID, trip.OwnerID, trip.DriverID, trip.RouteID, trip.JobID,
		trip.TripType, trip.Count, trip.TripDate, trip.Events)
	return err
}

// ListForMonth returns a driver's trips in [monthStart, nextMonth), which is
// the aggregation window for payout calculation.
func (r *TripRepository) ListForMonth(ctx context.Context, ownerID, driverID string, monthStart time.Time) ([]entity.Trip, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var trips []entity.Trip
	query := `
		SELECT trip_id, owner_id, driver_id, route_id, job_id, trip_type, count, trip_date, events, created_at
		FROM trips
		WHERE owner_id = ? AND driver_id = ? AND trip_date >= ? AND trip_date < ?
		ORDER BY trip_date
	`
	nextMonth := monthStart.AddDate(0, 1, 0)
	if err := db.SelectContext(ctx, &trips, query, ownerID, driverID, monthStart, nextMonth); err != nil {
		return nil, err
	}
	return trips, nil
}

// MonthTotals returns per-month trip counts for the driver's trailing months,
// used for past-month summaries in insight payloads.
func (r *TripRepository) MonthTotals(ctx context.Context, ownerID, driverID string, since time.Time) (map[string]int, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	rows := []struct {
		Month string `db:"month"`
		Total int    `db:"total"`
	}{}
	query := `
		SELECT DATE_FORMAT(trip_date, '%Y-%m') AS month, COALESCE(SUM(count), 0) AS total
		FROM trips
		WHERE owner_id = ? AND driver_id = ? AND trip_date >= ?
		GROUP BY DATE_FORMAT(trip_date, '%Y-%m')
		ORDER BY month
	`
	if err := db.SelectContext(ctx, &rows, query, ownerID, driverID, since); err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(rows))
	for _, row := range rows {
		totals[row.Month] = row.Total
	}
	return totals, nil
}
