package domain

import "errors"

var (
	// ErrInvalidInput covers non-numeric weights, bad units and bad or
	// duplicate profile names. The operation is aborted with no state change.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIO indicates the backing storage could not be read or written.
	ErrIO = errors.New("io error")
	// ErrNoProfile is returned when an operation needs a selected profile.
	ErrNoProfile = errors.New("no profile selected")
	// ErrNoData is returned when there are no records to plot or export.
	ErrNoData = errors.New("no data")
)
