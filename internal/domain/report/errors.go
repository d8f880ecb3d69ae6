package report

import "errors"

// Report domain errors
var (
	// ErrInvalidRange is returned when the filter's end date precedes
	// its start date. No partial report is produced.
	ErrInvalidRange = errors.New("report date range end is before start")

	ErrUnknownFormat = errors.New("unknown export format")
)
