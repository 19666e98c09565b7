package wishlist

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyTitle = errors.New("wishlist title cannot be empty")

const maxTitleLen = 200

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if len(s) > maxTitleLen {
		return Title{}, errors.New("wishlist title too long")
	}
	return Title{value: s}, nil
}

func (t Title) Value() string {
	return t.value
}

// Wishlist is a named, optionally dated collection of items owned by one user
// and shared by link. OwnerID is nil only for non-authenticated demo lists.
type Wishlist struct {
	id        uuid.UUID
	title     Title
	ownerID   *uuid.UUID
	eventDate *time.Time
	createdAt time.Time
}

func NewWishlist(title Title, ownerID *uuid.UUID, eventDate *time.Time) *Wishlist {
	return &Wishlist{
		id:        uuid.New(),
		title:     title,
		ownerID:   ownerID,
		eventDate: eventDate,
	}
}

func ReconstructWishlist(id uuid.UUID, title Title, ownerID *uuid.UUID, eventDate *time.Time, createdAt time.Time) *Wishlist {
	return &Wishlist{
		id:        id,
		title:     title,
		ownerID:   ownerID,
		eventDate: eventDate,
		createdAt: createdAt,
	}
}

func (w *Wishlist) ID() uuid.UUID         { return w.id }
func (w *Wishlist) Title() Title          { return w.title }
func (w *Wishlist) OwnerID() *uuid.UUID   { return w.ownerID }
func (w *Wishlist) EventDate() *time.Time { return w.eventDate }
func (w *Wishlist) CreatedAt() time.Time  { return w.createdAt }

func (w *Wishlist) IsOwnedBy(userID uuid.UUID) bool {
	return w.ownerID != nil && *w.ownerID == userID
}

// IsEventPassed reports whether the event date lies strictly before the start
// of today in the given location. Lists without a date never pass.
func (w *Wishlist) IsEventPassed(now time.Time) bool {
	return EventPassed(w.eventDate, now)
}

// EventPassed is the same rule for callers holding a bare event date, such as
// read-side views that never reconstruct the entity.
func EventPassed(date *time.Time, now time.Time) bool {
	if date == nil {
		return false
	}
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return date.Before(startOfToday)
}
