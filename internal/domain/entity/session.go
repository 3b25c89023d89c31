package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session anchors one refresh-token lineage on the server side.
// Its ID is the "jti" claim carried by the refresh token; on every refresh the
// row keeps its identity as a lineage but the ID and expiry are swapped out,
// which is what invalidates the previous refresh token.
type Session struct {
	ID        uuid.UUID // Current token identifier (jti). Replaced on rotation.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	Remember  bool      // Lifetime tier chosen at sign-in. Fixed for the lineage.
	ExpiresAt time.Time // The exact time when the current refresh token expires.
	CreatedAt time.Time // Timestamp of when this lineage started (the original sign-in).
}
