package feed

import "errors"

// Sentinel errors for callers to match with errors.Is.
var (
	ErrOpenFeed    = errors.New("open feed failed")
	ErrDecodeEvent = errors.New("decode event failed")
)
