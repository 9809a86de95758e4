package indexlist

import "errors"

var (
	// ErrLiteralOrder indicates AddAnd was given lit0 >= lit1, or AddXor
	// lit0 <= lit1. Callers must normalise fanin order before inserting.
	ErrLiteralOrder = errors.New("indexlist: literal ordering violated")

	// ErrHeaderOverflow indicates a packed header field limit was hit:
	// at most 255 inputs, 255 outputs, 65535 gates.
	ErrHeaderOverflow = errors.New("indexlist: packed header field overflow")

	// ErrNotNormalized indicates the encoded network is not in normalised
	// index order (PI k at index k, gate k at index NumPIs+k).
	ErrNotNormalized = errors.New("indexlist: network not in normalized index order")

	// ErrNotTopological indicates a gate references a position at or after
	// its own.
	ErrNotTopological = errors.New("indexlist: gate fanin not in topological order")

	// ErrMalformedList indicates raw values that fail structural
	// validation for the declared shape.
	ErrMalformedList = errors.New("indexlist: malformed index list")

	// ErrInputArity indicates an insertion was given a number of input
	// signals different from the list's PI count.
	ErrInputArity = errors.New("indexlist: input signal count does not match list")

	// ErrUnsupportedGate indicates the encoded network contains a gate
	// type the target list cannot express.
	ErrUnsupportedGate = errors.New("indexlist: unsupported gate type")
)
