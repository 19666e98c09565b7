package item

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrEmptyName    = errors.New("item name cannot be empty")
	ErrInvalidPrice = errors.New("target price must be positive")
)

const maxNameLen = 200

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if len(s) > maxNameLen {
		return Name{}, errors.New("item name too long")
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// Money is a target price in minor units (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents <= 0 {
		return Money{}, ErrInvalidPrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// SearchLink derives a marketplace search URL for items added without an
// explicit product link, mirroring the card fallback on the storefront.
func SearchLink(name string) string {
	return "https://market.yandex.ru/search?text=" + url.QueryEscape(name)
}
