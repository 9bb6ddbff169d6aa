package utils

const (
	// NODETOL is the absolute tolerance below which two values of order
	// one are treated as equal
	NODETOL = 1.e-12
)
