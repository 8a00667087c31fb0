package models

import (
	"time"

	"github.com/google/uuid"
)

// Token is a single row of one of the three token families.
// Refresh tokens carry Revoked and an optional device descriptor,
// verification and reset tokens carry Used. In either case a raised
// flag is terminal.
type Token struct {
	ID         uuid.UUID `db:"id"          json:"id"`
	UserID     uuid.UUID `db:"user_id"     json:"userId"`
	TokenHash  string    `db:"token_hash"  json:"-"`
	TokenHint  string    `db:"token_hint"  json:"-"`
	DeviceInfo *string   `db:"device_info" json:"deviceInfo,omitempty"`
	ExpiresAt  time.Time `db:"expires_at"  json:"expiresAt"`
	Used       bool      `db:"used"        json:"used"`
	Revoked    bool      `db:"revoked"     json:"revoked"`
	CreatedAt  time.Time `db:"created_at"  json:"createdAt"`
}

// IsTerminal reports whether the token has been consumed or revoked.
func (t *Token) IsTerminal() bool {
	return t.Used || t.Revoked
}
