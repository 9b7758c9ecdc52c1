// sessions/store.go
//
// Server-side sessions resolved from a signed cookie. The cookie only
// carries the session id; the session itself lives in the store with a
// fixed expiry counted from issuance (no sliding window).
package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lifetime is the fixed session validity from issuance.
const Lifetime = 7 * 24 * time.Hour

// Session is the server-side state behind one cookie. UserID is empty
// for anonymous visitors; ReturnTo records a deferred destination set
// before an auth redirect and is consumed once after login.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	ReturnTo  string    `json:"returnTo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store persists sessions. Get returns (nil, nil) for unknown or
// expired ids. Save never extends the expiry.
type Store interface {
	Create(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

func newSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(Lifetime),
	}
}
