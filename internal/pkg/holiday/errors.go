package holiday

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("could not load holiday list")
	ErrInvalidFormat       = errors.New("invalid holiday list format")
)
