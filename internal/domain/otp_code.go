package domain

import (
	"time"

	"github.com/google/uuid"
)

// OtpCode is one issued one-time code. Records are never deleted: a superseded
// or consumed code stays with Used set.
type OtpCode struct {
	ID        uuid.UUID  `db:"id"`
	Email     string     `db:"email"`
	CodeHash  string     `db:"code_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	Used      bool       `db:"used"`
	UsedAt    *time.Time `db:"used_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// Active reports whether the code can still be consumed at now.
func (c *OtpCode) Active(now time.Time) bool {
	return !c.Used && c.ExpiresAt.After(now)
}
