package huffzip

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when a Huffman tree is requested for a
	// frequency table with no entries.  Compress handles empty input on its
	// own and never returns it.
	ErrEmptyInput = errors.New("huffzip: empty frequency table")

	// ErrFormat is returned when compressed data does not follow the file
	// layout, or declares values outside their valid ranges.
	ErrFormat = errors.New("huffzip: malformed compressed data")

	// ErrDecodeTruncated is returned when the meaningful bits run out while
	// the decoder is in the middle of a code.
	ErrDecodeTruncated = errors.New("huffzip: truncated Huffman bitstream")

	// ErrAlphabetOverflow is returned when a symbol does not fit in the
	// byte alphabet.
	ErrAlphabetOverflow = errors.New("huffzip: symbol outside alphabet")
)

// IOError reports a failure of the underlying reader or writer.  It is never
// retried.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "huffzip: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

var _ error = (*IOError)(nil)
