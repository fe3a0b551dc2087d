package entity

import "time"

// PayoutSlab is one owner-configured trip-count range. The table is read-only
// to payout calculation; owners replace it wholesale from settings.
type PayoutSlab struct {
	SlabID       string    `db:"slab_id"`
	OwnerID      string    `db:"owner_id"`
	MinTrips     int       `db:"min_trips"`
	MaxTrips     int       `db:"max_trips"`
	PayoutAmount float64   `db:"payout_amount"`
	CreatedAt    time.Time `db:"created_at"`
}
