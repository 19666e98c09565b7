package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Wishlist errors
	ErrWishlistNotFound = errors.New("wishlist not found")
	ErrWishlistNotOwned = errors.New("wishlist not owned by user")

	// Item errors
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidItemState = errors.New("item has a non-positive target price")

	// Contribution errors
	ErrInvalidAmount = errors.New("contribution amount must be a positive finite number")

	// Guest identity errors
	ErrGuestTokenRequired = errors.New("guest token required")

	// Idea generation errors
	ErrAPIKeyMissing = errors.New("text generation API key is not configured")
	ErrGeneration    = errors.New("could not generate ideas")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
