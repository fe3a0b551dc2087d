package repository

import (
	"context"

	"fleet-service/src/internal/entity"
	"fleet-service/src/pkg/databases/mysql"
)

type DriverRepository struct {
	DB mysql.DBInterface
}

func NewDriverRepository(db mysql.DBInterface) *DriverRepository {
	return &DriverRepository{
		DB: db,
	}
}

func (r *DriverRepository) CreateDriver(ctx context.Context, driver *entity.Driver) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO drivers (driver_id, owner_id, full_name, mobile_number, password_hash, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`
	_, err = db.ExecContext(ctx, query,
		driver.DriverID, driver.OwnerID, driver.FullName,
		driver.MobileNumber, driver.PasswordHash, driver.Status)
	return err
}

func (r *DriverRepository) FindByID(ctx context.Context, id string) (*entity.Driver, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var driver entity.Driver
	query := `
		SELECT driver_id, owner_id, full_name, mobile_number, password_hash, status, created_at
		FROM drivers
		WHERE driver_id = ?
	`
	if err := db.GetContext(ctx, &driver, query, id); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) FindByMobile(ctx context.Context, mobile string) (*entity.Driver, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var driver entity.Driver
	query := `
		SELECT driver_id, owner_id, full_name, mobile_number, password_hash, status, created_at
		FROM drivers
		WHERE mobile_number = ?
	`
	if err := db.GetContext(ctx, &driver, query, mobile); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Driver, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var drivers []entity.Driver
	query := `
		SELECT driver_id, owner_id, full_name, mobile_number, password_hash, status, created_at
		FROM drivers
		WHERE owner_id = ?
		ORDER BY created_at
	`
	if err := db.SelectContext(ctx, &drivers, query, ownerID); err != nil {
		return nil, err
	}
	return drivers, nil
}
