package huffzip

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder turns a Huffman-coded bitstream back into symbols by walking a
// Tree.
type Decoder struct {
	tree *Tree
}

// NewDecoder returns a Decoder for the given tree.
func NewDecoder(t *Tree) *Decoder {
	return &Decoder{tree: t}
}

// Decode replays the meaningful bits of p through the tree.
//
// Starting at the root, a 0 bit moves to the left child and a 1 bit to the
// right child.  Reaching a leaf emits its symbol and returns to the root.
// When the root is itself a leaf, every bit emits that symbol.
//
// The stream is well formed only if the walk ends at the root after the last
// meaningful bit, having emitted exactly as many symbols as the tree weighs.
//
func (d *Decoder) Decode(p Payload) ([]byte, error) {
	root := d.tree.Root()
	total := d.tree.Weight()

	// Every code is at least one bit long.
	if available := p.NumBits(); total > available {
		return nil, fmt.Errorf("%w: %d symbols declared, only %d bits present", ErrDecodeTruncated, total, available)
	}

	out := make([]byte, 0, total)
	current := root

	err := Unpack(p, func(bit bool) error {
		if inner, ok := current.(*Internal); ok {
			if bit {
				current = inner.Right
			} else {
				current = inner.Left
			}
		}

		leaf, ok := current.(*Leaf)
		if !ok {
			return nil
		}
		if uint64(len(out)) >= total {
			return fmt.Errorf("%w: stream holds more than the %d declared symbols", ErrFormat, total)
		}
		out = append(out, byte(leaf.Symbol))
		current = root
		return nil
	})
	if err != nil {
		return nil, err
	}

	if current != root {
		return nil, fmt.Errorf("%w: stream ends inside a code", ErrDecodeTruncated)
	}
	if uint64(len(out)) != total {
		return nil, fmt.Errorf("%w: decoded %d of %d symbols", ErrDecodeTruncated, len(out), total)
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's tree to
// the given writer, one line per symbol.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tWeight() = %d\n", d.tree.Weight())
	table := BuildCodeTable(d.tree)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if hc, ok := table.Encode(symbol); ok {
			fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, symbol)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
