package huffzip

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Payload is a Huffman-coded bitstream, packed most significant bit first and
// right-padded with zero bits to a byte boundary.
type Payload struct {
	// Padding holds the number of zero bits (0 .. 7) appended after the last
	// meaningful bit.
	Padding uint8

	// Bits holds the packed bytes.
	Bits []byte
}

// NumBits returns the number of meaningful bits in the payload.
func (p Payload) NumBits() uint64 {
	n := 8 * uint64(len(p.Bits))
	if uint64(p.Padding) > n {
		return 0
	}
	return n - uint64(p.Padding)
}

// Pack encodes data, in its original order, under the given code table.
func Pack(data []byte, table CodeTable) (Payload, error) {
	var numBits uint64
	for _, b := range data {
		hc, ok := table.Encode(Symbol(b))
		if !ok {
			return Payload{}, fmt.Errorf("%w: no code for symbol %d", ErrAlphabetOverflow, b)
		}
		numBits += uint64(hc.Size)
	}

	var buf bytes.Buffer
	buf.Grow(int((numBits + 7) / 8))

	w := bitio.NewWriter(&buf)
	for _, b := range data {
		hc, _ := table.Encode(Symbol(b))
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return Payload{}, &IOError{Op: "pack", Err: err}
		}
	}

	skipped, err := w.Align()
	if err != nil {
		return Payload{}, &IOError{Op: "pack", Err: err}
	}
	if err := w.Close(); err != nil {
		return Payload{}, &IOError{Op: "pack", Err: err}
	}

	padding := paddingFor(numBits)
	assert.Assertf(skipped == padding, "bit writer skipped %d bits, expected %d", skipped, padding)
	assert.Assertf(uint64(buf.Len()) == (numBits+7)/8, "packed %d bytes for %d bits", buf.Len(), numBits)

	return Payload{Padding: padding, Bits: buf.Bytes()}, nil
}

// Unpack calls fn once for every meaningful bit of the payload, in stream
// order.  Padding bits are never delivered.  Unpack stops at the first error
// returned by fn.
func Unpack(p Payload, fn func(bit bool) error) error {
	numBits := p.NumBits()
	r := bitio.NewReader(bytes.NewReader(p.Bits))
	for i := uint64(0); i < numBits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return &IOError{Op: "unpack", Err: err}
		}
		if err := fn(bit); err != nil {
			return err
		}
	}
	return nil
}
