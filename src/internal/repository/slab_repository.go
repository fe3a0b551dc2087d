package repository

import (
	"context"

	"fleet-service/src/internal/entity"
	"fleet-service/src/pkg/databases/mysql"

	"github.com/google/uuid"
)

type SlabRepository struct {
	DB mysql.DBInterface
}

func NewSlabRepository(db mysql.DBInterface) *SlabRepository {
	return &SlabRepository{
		DB: db,
	}
}

func (r *SlabRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.PayoutSlab, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var slabs []entity.PayoutSlab
	query := `
		SELECT slab_id, owner_id, min_trips, max_trips, payout_amount, created_at
		FROM payout_slabs
		WHERE owner_id = ?
		ORDER BY min_trips
	`
	if err := db.SelectContext(ctx, &slabs, query, ownerID); err != nil {
		return nil, err
	}
	return slabs, nil
}

// ReplaceForOwner swaps the owner's slab table wholesale inside one
// transaction so readers never observe a half-written table.
func (r *SlabRepository) ReplaceForOwner(ctx context.Context, ownerID string, slabs []entity.PayoutSlab) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM payout_slabs WHERE owner_id = ?`, ownerID); err != nil {
		return err
	}

	insert := `
		INSERT INTO payout_slabs (slab_id, owner_id, min_trips, max_trips, payout_amount, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`
	for _, s := range slabs {
		slabID := s.SlabID
		if slabID == "" {
			slabID = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, insert, slabID, ownerID, s.MinTrips, s.MaxTrips, s.PayoutAmount); err != nil {
			return err
		}
	}

	return tx.Commit()
}
