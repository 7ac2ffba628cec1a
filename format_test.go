package huffzip

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var aaabbcCompressed = []byte{
	0x00, 0x00, 0x00, 0x03, // numEntries
	'a', 0x00, 0x00, 0x00, 0x03,
	'b', 0x00, 0x00, 0x00, 0x02,
	'c', 0x00, 0x00, 0x00, 0x01,
	0x07,       // padding
	0x1f, 0x00, // 000111110 + 7 zero bits
}

func TestAppendFormat(t *testing.T) {
	freq := FrequencyTable{'c': 1, 'a': 3, 'b': 2}
	p := Payload{Padding: 7, Bits: []byte{0x1f, 0x00}}

	raw, err := AppendFormat(nil, freq, p)
	require.NoError(t, err)
	require.Equal(t, aaabbcCompressed, raw)

	raw, err = AppendFormat([]byte{0xee}, freq, p)
	require.NoError(t, err)
	require.Equal(t, append([]byte{0xee}, aaabbcCompressed...), raw)
}

func TestAppendFormat_Errors(t *testing.T) {
	_, err := AppendFormat(nil, FrequencyTable{'a': 1}, Payload{Padding: 8, Bits: []byte{0}})
	require.ErrorIs(t, err, ErrFormat)

	_, err = AppendFormat(nil, FrequencyTable{'a': 1 << 31}, Payload{})
	require.ErrorIs(t, err, ErrFormat)

	_, err = AppendFormat(nil, FrequencyTable{'a': 0}, Payload{})
	require.ErrorIs(t, err, ErrFormat)

	_, err = AppendFormat(nil, FrequencyTable{1000: 1}, Payload{})
	require.ErrorIs(t, err, ErrAlphabetOverflow)
}

type failingWriter struct{}

var errWriteFailed = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFormat(&buf, FrequencyTable{'a': 3, 'b': 2, 'c': 1}, Payload{Padding: 7, Bits: []byte{0x1f, 0x00}})
	require.NoError(t, err)
	require.Equal(t, aaabbcCompressed, buf.Bytes())

	err = WriteFormat(failingWriter{}, FrequencyTable{'a': 1}, Payload{Padding: 7, Bits: []byte{0}})
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "write", ioErr.Op)
	require.ErrorIs(t, err, errWriteFailed)
}

func TestReadFormat(t *testing.T) {
	freq, p, err := ReadFormat(aaabbcCompressed)
	require.NoError(t, err)
	require.Equal(t, FrequencyTable{'a': 3, 'b': 2, 'c': 1}, freq)
	require.Equal(t, Payload{Padding: 7, Bits: []byte{0x1f, 0x00}}, p)

	freq, p, err = ReadFormat([]byte{0, 0, 0, 0, 0})
	require.NoError(t, err)
	require.Empty(t, freq)
	require.Equal(t, uint64(0), p.NumBits())
}

func TestReadFormat_Errors(t *testing.T) {
	withPadding := func(padding byte) []byte {
		raw := append([]byte(nil), aaabbcCompressed...)
		raw[19] = padding
		return raw
	}

	type testRow struct {
		name string
		data []byte
	}

	testData := [...]testRow{
		{name: "nil", data: nil},
		{name: "short header", data: []byte{0, 0, 0}},
		{name: "negative entry count", data: []byte{0xff, 0xff, 0xff, 0xff, 0x00}},
		{name: "entry count above alphabet", data: []byte{0x00, 0x00, 0x01, 0x01, 0x00}},
		{name: "truncated entries", data: aaabbcCompressed[:12]},
		{name: "missing padding", data: aaabbcCompressed[:19]},
		{name: "padding 8", data: withPadding(8)},
		{name: "negative padding", data: withPadding(0xff)},
		{name: "zero frequency", data: []byte{0, 0, 0, 1, 'a', 0, 0, 0, 0, 0}},
		{name: "negative frequency", data: []byte{0, 0, 0, 1, 'a', 0x80, 0, 0, 0, 0}},
		{name: "duplicate symbol", data: []byte{0, 0, 0, 2, 'a', 0, 0, 0, 1, 'a', 0, 0, 0, 1, 0, 0}},
		{name: "empty table with payload", data: []byte{0, 0, 0, 0, 0, 0xff}},
		{name: "empty table with padding", data: []byte{0, 0, 0, 0, 3}},
		{name: "padding without bytes", data: []byte{0, 0, 0, 1, 'a', 0, 0, 0, 1, 7}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, _, err := ReadFormat(row.data)
			require.ErrorIs(t, err, ErrFormat)
		})
	}
}
