package domain

import "time"

type User struct {
	ID                     int64     `db:"id" json:"id"`
	Email                  string    `db:"email" json:"email"`
	Coins                  int64     `db:"coins" json:"coins"`
	TotalShipmentDelivered int32     `db:"total_shipment_delivered" json:"total_shipment_delivered"`
	TotalIncome            int64     `db:"total_income" json:"total_income"`
	CreatedAt              time.Time `db:"created_at" json:"created_at"`
	LastLoginAt            time.Time `db:"last_login_at" json:"last_login_at"`
}

// UserStats are the counters owned by the game client.
type UserStats struct {
	Coins                  int64
	TotalShipmentDelivered int32
	TotalIncome            int64
}

func (u *User) Stats() UserStats {
	return UserStats{
		Coins:                  u.Coins,
		TotalShipmentDelivered: u.TotalShipmentDelivered,
		TotalIncome:            u.TotalIncome,
	}
}
