package entity

import "time"

type Owner struct {
	OwnerID      string    `db:"owner_id"`
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	MobileNumber string    `db:"mobile_number"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	SubscriptionActive    = "active"
	SubscriptionTrial     = "trial"
	SubscriptionExpired   = "expired"
	SubscriptionCancelled = "cancelled"
)

type Subscription struct {
	OwnerID          string    `db:"owner_id"`
	Plan             string    `db:"plan"`
	Status           string    `db:"status"`
	CurrentPeriodEnd time.Time `db:"current_period_end"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// IsUsable reports whether the subscription still grants dashboard access.
func (s Subscription) IsUsable(now time.Time) bool {
	if s.Status != SubscriptionActive && s.Status != SubscriptionTrial {
		return false
	}
	return now.Before(s.CurrentPeriodEnd)
}
