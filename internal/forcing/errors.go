package forcing

import "errors"

var (
	// ErrShortSeries indicates a dataset column with fewer than 365 daily values.
	ErrShortSeries = errors.New("forcing: series shorter than one 365-day year")

	// ErrInvalidYears indicates a negative simulation length.
	ErrInvalidYears = errors.New("forcing: simulation length must not be negative")

	// ErrUnknownFormat indicates a dataset file extension that has no reader.
	ErrUnknownFormat = errors.New("forcing: unknown dataset format")

	// ErrMissingColumn indicates a dataset without the requested column.
	ErrMissingColumn = errors.New("forcing: column not found in dataset")
)
