package seawater

import "errors"

// ErrDimensionMismatch indicates series arguments of different lengths.
var ErrDimensionMismatch = errors.New("seawater: dimension mismatch between input series")
