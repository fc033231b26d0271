package services

import "errors"

// User-facing error kinds. These surface to the client as upsell or
// correction prompts and are never fatal to the process.
var (
	ErrLikeLimitReached       = errors.New("daily like limit reached")
	ErrInsufficientSuperLikes = errors.New("insufficient super likes")
	ErrInsufficientBoosts     = errors.New("insufficient boosts")
	ErrRewindNotAllowed       = errors.New("rewind not allowed for this tier")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrAccountNotFound        = errors.New("account not found")
)

// ErrorCode maps an error kind to the wire code the client branches on.
// Unknown errors map to an empty string.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrLikeLimitReached):
		return "LIKE_LIMIT_REACHED"
	case errors.Is(err, ErrInsufficientSuperLikes):
		return "INSUFFICIENT_SUPERLIKES"
	case errors.Is(err, ErrInsufficientBoosts):
		return "INSUFFICIENT_BOOSTS"
	case errors.Is(err, ErrRewindNotAllowed):
		return "REWIND_NOT_ALLOWED"
	case errors.Is(err, ErrProfileNotFound):
		return "PROFILE_NOT_FOUND"
	case errors.Is(err, ErrAccountNotFound):
		return "ACCOUNT_NOT_FOUND"
	}
	return ""
}
