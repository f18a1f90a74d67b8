// Package session persists studio sessions so an interactive run can be
// resumed later with the same artwork on screen.
//
// A session records the inputs of the current artwork (seed, mode, theme,
// shape count, signature settings), never the generated shapes: the
// shapes are regenerated from the inputs on resume.
//
// # Usage
//
//	store, err := session.NewFileStore("") // ~/.config/gridlock/sessions/
//	sess := session.New(session.DefaultTTL)
//	sess.Capture(art.Current())
//	err = store.Set(ctx, sess)
//
//	latest, err := store.Latest(ctx)
//	if latest != nil {
//	    art, err := artwork.New(latest.Apply(settings), logger)
//	}
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/gridlock/pkg/core/artwork"
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("not found")

// Session is one studio run.
type Session struct {
	ID              string    `json:"id"`
	Seed            string    `json:"seed"`
	Mode            string    `json:"mode"`
	Theme           string    `json:"theme"`
	ShapeCount      int       `json:"shape_count,omitempty"`
	SignatureColor  int       `json:"signature_color"`
	SignatureOffset float64   `json:"signature_offset"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// DefaultTTL is how long an untouched session is kept.
const DefaultTTL = 30 * 24 * time.Hour

// New creates an empty session with a random ID.
func New(ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// ShortID returns the first block of the ID, used in file names and logs.
func (s *Session) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}

// Capture records the inputs of snap and extends the expiry by the
// session's original lifetime.
func (s *Session) Capture(snap artwork.Snapshot) {
	ttl := s.ExpiresAt.Sub(s.UpdatedAt)
	s.Seed = snap.Seed.String()
	s.Mode = snap.Mode.Name
	s.Theme = snap.Theme.Name
	s.ShapeCount = snap.ShapeCount
	s.SignatureColor = snap.SignatureColor
	s.SignatureOffset = snap.SignatureOffset
	s.UpdatedAt = time.Now()
	s.ExpiresAt = s.UpdatedAt.Add(ttl)
}

// Apply overlays the recorded inputs on base. Empty fields keep base's
// values. The signature color is not part of Settings; callers cycle to it
// after building the artwork.
func (s *Session) Apply(base artwork.Settings) artwork.Settings {
	if s.Seed != "" {
		base.Seed = s.Seed
	}
	if s.Mode != "" {
		base.Mode = s.Mode
	}
	if s.Theme != "" {
		base.Theme = s.Theme
	}
	if s.ShapeCount != 0 {
		base.ShapeCount = s.ShapeCount
	}
	base.SignatureOffset = s.SignatureOffset
	return base
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Latest returns the most recently updated live session, or nil.
	Latest(ctx context.Context) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, s *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
}
