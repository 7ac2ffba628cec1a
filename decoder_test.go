package huffzip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestDecoder(t *testing.T, freq FrequencyTable) *Decoder {
	t.Helper()
	tree, err := BuildTree(freq)
	require.NoError(t, err)
	return NewDecoder(tree)
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder(t, FrequencyTable{'a': 3, 'b': 2, 'c': 1})

	out, err := d.Decode(Payload{Padding: 7, Bits: []byte{0x1f, 0x00}})
	require.NoError(t, err)
	require.Equal(t, []byte("aaabbc"), out)

	// Same symbols, different order.
	// c="10" b="11" a="0" a="0" b="11" a="0" → 101100110 + 7 zero bits.
	out, err = d.Decode(Payload{Padding: 7, Bits: []byte{0xb3, 0x00}})
	require.NoError(t, err)
	require.Equal(t, []byte("cbaaba"), out)
}

func TestDecoder_Degenerate(t *testing.T) {
	d := makeTestDecoder(t, FrequencyTable{'a': 4})

	out, err := d.Decode(Payload{Padding: 4, Bits: []byte{0x00}})
	require.NoError(t, err)
	require.Equal(t, []byte("aaaa"), out)
}

func TestDecoder_Truncated(t *testing.T) {
	t.Run("ends inside a code", func(t *testing.T) {
		// 00011111: a a a b b, then the first bit of another code.
		d := makeTestDecoder(t, FrequencyTable{'a': 3, 'b': 2, 'c': 1})
		_, err := d.Decode(Payload{Padding: 0, Bits: []byte{0x1f}})
		require.ErrorIs(t, err, ErrDecodeTruncated)
	})

	t.Run("fewer bits than symbols", func(t *testing.T) {
		d := makeTestDecoder(t, FrequencyTable{'a': 5})
		_, err := d.Decode(Payload{Padding: 5, Bits: []byte{0x00}})
		require.ErrorIs(t, err, ErrDecodeTruncated)
	})

	t.Run("fewer symbols than declared", func(t *testing.T) {
		// 0001111: a a a b b, parked at the root but one symbol short.
		d := makeTestDecoder(t, FrequencyTable{'a': 3, 'b': 2, 'c': 1})
		_, err := d.Decode(Payload{Padding: 1, Bits: []byte{0x1e}})
		require.ErrorIs(t, err, ErrDecodeTruncated)
	})

	t.Run("empty payload", func(t *testing.T) {
		d := makeTestDecoder(t, FrequencyTable{'a': 1, 'b': 1})
		_, err := d.Decode(Payload{})
		require.ErrorIs(t, err, ErrDecodeTruncated)
	})
}

func TestDecoder_TooManySymbols(t *testing.T) {
	d := makeTestDecoder(t, FrequencyTable{'a': 3, 'b': 2, 'c': 1})
	_, err := d.Decode(Payload{Padding: 0, Bits: []byte{0x00}})
	require.ErrorIs(t, err, ErrFormat)

	d = makeTestDecoder(t, FrequencyTable{'a': 3})
	_, err = d.Decode(Payload{Padding: 4, Bits: []byte{0x00}})
	require.ErrorIs(t, err, ErrFormat)
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder(t, FrequencyTable{0: 5, 1: 9, 2: 12, 3: 13, 4: 16, 5: 45})

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tWeight() = 100\n",
		"\tDecode(\"1100\") = 0\n",
		"\tDecode(\"1101\") = 1\n",
		"\tDecode(\"100\") = 2\n",
		"\tDecode(\"101\") = 3\n",
		"\tDecode(\"111\") = 4\n",
		"\tDecode(\"0\") = 5\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, err := d.Dump(&buf)
	require.NoError(t, err)
	require.Equal(t, expectDump, buf.String())
}
