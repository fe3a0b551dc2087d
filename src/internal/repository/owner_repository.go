package repository

import (
	"context"

	"fleet-service/src/internal/entity"
	"fleet-service/src/pkg/databases/mysql"
)

type OwnerRepository struct {
	DB mysql.DBInterface
}

func NewOwnerRepository(db mysql.DBInterface) *OwnerRepository {
	return &OwnerRepository{
		DB: db,
	}
}

func (r *OwnerRepository) CreateOwner(ctx context.Context, owner *entity.Owner) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO owners (owner_id, full_name, email, mobile_number, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`
	_, err = db.ExecContext(ctx, query,
		owner.OwnerID, owner.FullName, owner.Email, owner.MobileNumber, owner.PasswordHash)
	return err
}

func (r *OwnerRepository) FindByID(ctx context.Context, id string) (*entity.Owner, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var owner entity.Owner
	query := `
		SELECT owner_id, full_name, email, mobile_number, password_hash, created_at
		FROM owners
		WHERE owner_id = ?
	`
	if err := db.GetContext(ctx, &owner, query, id); err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *OwnerRepository) FindByEmail(ctx context.Context, email string) (*entity.Owner, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var owner entity.Owner
	query := `
		SELECT owner_id, full_name, email, mobile_number, password_hash, created_at
		FROM owners
		WHERE email = ?
	`
	if err := db.GetContext(ctx, &owner, query, email); err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *OwnerRepository) FindSubscription(ctx context.Context, ownerID string) (*entity.Subscription, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var sub entity.Subscription
	query := `
		SELECT owner_id, plan, status, current_period_end, created_at, updated_at
		FROM subscriptions
		WHERE owner_id = ?
	`
	if err := db.GetContext(ctx, &sub, query, ownerID); err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpsertSubscription replaces the owner's single subscription row. New owners
// start on a trial created here.
func (r *OwnerRepository) UpsertSubscription(ctx context.Context, sub *entity.Subscription) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO subscriptions (owner_id, plan, status, current_period_end, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
		ON DUPLICATE KEY UPDATE
			plan = VALUES(plan),
			status = VALUES(status),
			current_period_end = VALUES(current_period_end),
			updated_at = NOW()
	`
	_, err = db.ExecContext(ctx, query, sub.OwnerID, sub.Plan, sub.Status, sub.CurrentPeriodEnd)
	return err
}
