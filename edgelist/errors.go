package edgelist

import "errors"

var (
	// ErrBadToken indicates a token that is not a base-10 uint64.
	ErrBadToken = errors.New("edgelist: token is not an unsigned integer")

	// ErrBadArity indicates a row with other than 2 or 3 values.
	ErrBadArity = errors.New("edgelist: row must have 2 or 3 values")

	// ErrIndexOverflow indicates a value too large to use as an index.
	ErrIndexOverflow = errors.New("edgelist: value overflows int index")
)
