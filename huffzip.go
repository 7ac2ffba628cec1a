package huffzip

import (
	"fmt"
	"io"
	"math"
)

// Compress Huffman-codes input and returns its compressed representation.
//
// Empty input is valid and compresses to a zero-entry table with an empty
// payload.
//
func Compress(input []byte) ([]byte, error) {
	if len(input) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: input of %d bytes exceeds the int32 frequency field", ErrFormat, len(input))
	}

	freq := Analyze(input)
	if len(freq) == 0 {
		return AppendFormat(nil, freq, Payload{})
	}

	tree, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}

	table := BuildCodeTable(tree)
	p, err := Pack(input, table)
	if err != nil {
		return nil, err
	}
	return AppendFormat(nil, freq, p)
}

// Decompress inverts Compress.
func Decompress(data []byte) ([]byte, error) {
	freq, p, err := ReadFormat(data)
	if err != nil {
		return nil, err
	}
	if len(freq) == 0 {
		return []byte{}, nil
	}

	tree, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}
	return NewDecoder(tree).Decode(p)
}

// CompressTo reads all of r, compresses it, and writes the result to w.
func CompressTo(w io.Writer, r io.Reader) error {
	return transform(w, r, Compress)
}

// DecompressTo reads all of r, decompresses it, and writes the result to w.
// Nothing is written if the input is malformed.
func DecompressTo(w io.Writer, r io.Reader) error {
	return transform(w, r, Decompress)
}

func transform(w io.Writer, r io.Reader, fn func([]byte) ([]byte, error)) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return &IOError{Op: "read", Err: err}
	}
	out, err := fn(in)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}
