package entity

import "time"

const (
	DriverActive   = "active"
	DriverInactive = "inactive"
)

type Driver struct {
	DriverID     string    `db:"driver_id"`
	OwnerID      string    `db:"owner_id"`
	FullName     string    `db:"full_name"`
	MobileNumber string    `db:"mobile_number"`
	PasswordHash string    `db:"password_hash"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}
