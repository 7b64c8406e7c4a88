package event

import "errors"

var (
	// ErrNoData is returned when a webhook delivery carries no usable JSON
	// body. Its text is part of the HTTP contract.
	ErrNoData = errors.New("No data received")
)
