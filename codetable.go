package huffzip

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each symbol of a Tree to its Huffman code.  A CodeTable
// belongs to a single compress call; it is never persisted or shared.
type CodeTable struct {
	codes   []Code
	minSize byte
	maxSize byte
}

// BuildCodeTable derives the code of every leaf by walking the tree from the
// root, appending a 0 bit when descending left and a 1 bit when descending
// right.
//
// A tree whose root is a leaf has no edges to walk.  Its only symbol is
// assigned the 1-bit code "0" rather than the empty code, since an empty code
// would encode any number of occurrences as zero bits.
//
func BuildCodeTable(t *Tree) CodeTable {
	codes := make([]Code, NumSymbols)

	if leaf, ok := t.Root().(*Leaf); ok {
		codes[leaf.Symbol] = MakeCode(1, 0)
		return CodeTable{codes: codes, minSize: 1, maxSize: 1}
	}

	// Walk the tree with an explicit stack, so that pathological alphabets
	// cannot exhaust the goroutine stack.  The right child is pushed first
	// so that leaves are visited left to right.

	type stackItem struct {
		node Node
		code Code
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.NumLeaves()))+1)
	stack = append(stack, stackItem{node: t.Root()})

	var minSize, maxSize byte
	var hasMinMax bool

	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch node := top.node.(type) {
		case *Internal:
			assert.Assertf(top.code.Size < maxBitsPerCode, "Huffman code exceeds %d bits", maxBitsPerCode)
			stack = append(stack, stackItem{node.Right, top.code.Append(true)})
			stack = append(stack, stackItem{node.Left, top.code.Append(false)})

		case *Leaf:
			size := top.code.Size
			codes[node.Symbol] = top.code
			if !hasMinMax {
				hasMinMax = true
				minSize = size
				maxSize = size
			} else if minSize > size {
				minSize = size
			} else if maxSize < size {
				maxSize = size
			}
		}
	}

	return CodeTable{codes: codes, minSize: minSize, maxSize: maxSize}
}

// Encode returns the code for the given symbol.  The second result is false
// if the symbol is not part of the table.
func (ct CodeTable) Encode(symbol Symbol) (Code, bool) {
	if !symbol.Valid() || int(symbol) >= len(ct.codes) {
		return Code{}, false
	}
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Len returns the number of symbols that have a code.
func (ct CodeTable) Len() int {
	var n int
	for _, hc := range ct.codes {
		if hc.Size != 0 {
			n++
		}
	}
	return n
}

// WeightedLength returns the number of bits needed to encode an input with
// the given frequencies, i.e. the sum of count × code length over all
// symbols.
func (ct CodeTable) WeightedLength(freq FrequencyTable) uint64 {
	var sum uint64
	for symbol, count := range freq {
		hc, _ := ct.Encode(symbol)
		sum += uint64(count) * uint64(hc.Size)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol, hc := range ct.codes {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
