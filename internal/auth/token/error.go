package token

import "errors"

// ErrTokenInvalid is the uniform failure for unknown, expired and
// already-consumed tokens alike, so callers cannot distinguish them.
var ErrTokenInvalid = errors.New("invalid or expired token")
