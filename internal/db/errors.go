package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrNoLaunchRecords = errors.New("no launch records in database")
)
