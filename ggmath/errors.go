package ggmath

import "errors"

var (
	// ErrLaneCount is returned when decoding a vector from data that does
	// not hold exactly one value per lane.
	ErrLaneCount = errors.New("ggmath: wrong number of lanes")

	// ErrOverflow is the panic value (wrapped) raised by integer operators
	// built with the ggmath_overflow_checks tag.
	ErrOverflow = errors.New("ggmath: integer overflow")
)
