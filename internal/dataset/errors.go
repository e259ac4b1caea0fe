package dataset

import "errors"

// Loader error sentinels.
var (
	ErrMissingColumn  = errors.New("missing required column")
	ErrMalformedValue = errors.New("malformed value")
	ErrEmpty          = errors.New("dataset has no records")
)
