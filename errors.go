package charts

import (
	"errors"
)

var (
	ErrEmptyDataset  = errors.New("dataset has no entry")
	ErrNegativeValue = errors.New("negative value")
	ErrInvalidScale  = errors.New("scale max must be greater than zero")
	ErrSeriesCount   = errors.New("category values do not match series")
	ErrInvalidColor  = errors.New("invalid color")
	ErrUnknownChart  = errors.New("unknown chart")
	ErrClosed        = errors.New("renderer closed")
)
