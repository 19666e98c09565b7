package guest

import (
	"errors"
	"strings"
)

var ErrEmptyIdentity = errors.New("guest identity cannot be empty")

const maxIdentityLen = 64

// Identity is an opaque, browser-generated token used only to attribute
// contributions and to let a guest recognize their own reservations. It is
// trivially forgeable and carries no privilege.
type Identity struct {
	value string
}

func NewIdentity(s string) (Identity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Identity{}, ErrEmptyIdentity
	}
	if len(s) > maxIdentityLen {
		s = s[:maxIdentityLen]
	}
	return Identity{value: s}, nil
}

func (i Identity) Value() string {
	return i.value
}

func (i Identity) IsZero() bool {
	return i.value == ""
}

func (i Identity) Equals(other Identity) bool {
	return i.value == other.value
}
