package huffzip

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// The compressed layout, all integers big-endian:
//
//	int32   numEntries
//	repeat numEntries times:
//	    uint8   symbol
//	    int32   frequency
//	int8    paddingBitCount (0 .. 7)
//	byte[]  packed bits, most significant bit first
//
const (
	headerSize  = 4
	entrySize   = 1 + 4
	paddingSize = 1
)

var byteOrder = binary.BigEndian

// AppendFormat appends the compressed representation of freq and p to dst.
// Entries are written in ascending symbol order.
func AppendFormat(dst []byte, freq FrequencyTable, p Payload) ([]byte, error) {
	if len(freq) > NumSymbols {
		return nil, fmt.Errorf("%w: %d entries exceed the alphabet", ErrAlphabetOverflow, len(freq))
	}
	if p.Padding > 7 {
		return nil, fmt.Errorf("%w: padding of %d bits", ErrFormat, p.Padding)
	}

	symbols := freq.Symbols()
	dst = growSlice(dst, headerSize+entrySize*len(symbols)+paddingSize+len(p.Bits))
	dst = byteOrder.AppendUint32(dst, uint32(len(symbols)))
	for _, symbol := range symbols {
		count := freq[symbol]
		if !symbol.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrAlphabetOverflow, symbol)
		}
		if count == 0 || count > math.MaxInt32 {
			return nil, fmt.Errorf("%w: frequency %d of symbol %d does not fit in int32", ErrFormat, count, symbol)
		}
		dst = append(dst, byte(symbol))
		dst = byteOrder.AppendUint32(dst, count)
	}
	dst = append(dst, p.Padding)
	dst = append(dst, p.Bits...)
	return dst, nil
}

// WriteFormat writes the compressed representation of freq and p to w.
func WriteFormat(w io.Writer, freq FrequencyTable, p Payload) error {
	raw, err := AppendFormat(nil, freq, p)
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// ReadFormat parses compressed data back into its frequency table and
// payload.  The returned payload aliases data.
func ReadFormat(data []byte) (FrequencyTable, Payload, error) {
	if len(data) < headerSize {
		return nil, Payload{}, fmt.Errorf("%w: %d bytes is too short for the header", ErrFormat, len(data))
	}

	numEntries := int32(byteOrder.Uint32(data))
	if numEntries < 0 || int(numEntries) > NumSymbols {
		return nil, Payload{}, fmt.Errorf("%w: invalid entry count %d", ErrFormat, numEntries)
	}
	data = data[headerSize:]

	if len(data) < entrySize*int(numEntries)+paddingSize {
		return nil, Payload{}, fmt.Errorf("%w: %d entries declared, %d bytes available", ErrFormat, numEntries, len(data))
	}

	freq := make(FrequencyTable, numEntries)
	for i := int32(0); i < numEntries; i++ {
		symbol := Symbol(data[0])
		count := int32(byteOrder.Uint32(data[1:]))
		data = data[entrySize:]

		if count <= 0 {
			return nil, Payload{}, fmt.Errorf("%w: symbol %d has frequency %d", ErrFormat, symbol, count)
		}
		if _, dup := freq[symbol]; dup {
			return nil, Payload{}, fmt.Errorf("%w: duplicate entry for symbol %d", ErrFormat, symbol)
		}
		freq[symbol] = uint32(count)
	}

	padding := int8(data[0])
	if padding < 0 || padding > 7 {
		return nil, Payload{}, fmt.Errorf("%w: invalid padding bit count %d", ErrFormat, padding)
	}
	p := Payload{Padding: uint8(padding), Bits: data[paddingSize:]}

	if numEntries == 0 && (p.Padding != 0 || len(p.Bits) != 0) {
		return nil, Payload{}, fmt.Errorf("%w: empty frequency table with a non-empty payload", ErrFormat)
	}
	if len(p.Bits) == 0 && p.Padding != 0 {
		return nil, Payload{}, fmt.Errorf("%w: %d padding bits without packed bytes", ErrFormat, p.Padding)
	}

	return freq, p, nil
}

func growSlice(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	return out
}
