package huffzip

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.
type Node interface {
	// Weight is the sum of the frequencies of all leaves at or below this
	// node.
	Weight() uint64

	isNode()
}

// Leaf is a Node carrying a symbol.
type Leaf struct {
	Symbol Symbol
	Count  uint64
}

// Weight implements Node.
func (n *Leaf) Weight() uint64 { return n.Count }

func (*Leaf) isNode() {}

// Internal is a Node with exactly two children.  Each child belongs to
// exactly one parent.
type Internal struct {
	Sum   uint64
	Left  Node
	Right Node
}

// Weight implements Node.
func (n *Internal) Weight() uint64 { return n.Sum }

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Tree is a Huffman tree built from a FrequencyTable.
type Tree struct {
	root      Node
	numLeaves int
}

// Root returns the root of the tree.  For a table with a single symbol, the
// root is a *Leaf.
func (t *Tree) Root() Node {
	return t.root
}

// Weight returns the weight of the root, which equals the total number of
// symbols in the input the table was built from.
func (t *Tree) Weight() uint64 {
	return t.root.Weight()
}

// NumLeaves returns the number of distinct symbols in the tree.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// BuildTree builds the Huffman tree for the given frequencies.
//
// Ties between equal weights are broken by insertion order: leaves are
// inserted in ascending symbol order, and every combined node is inserted
// after all nodes that exist before it.  The compressor and the decompressor
// therefore build identical trees from identical tables.
//
func BuildTree(freq FrequencyTable) (*Tree, error) {
	if err := freq.Validate(); err != nil {
		return nil, err
	}

	symbols := freq.Symbols()

	// Step 1: build a minheap holding one leaf per symbol.

	h := nodeHeap{list: make([]heapItem, 0, len(symbols))}
	for _, symbol := range symbols {
		h.list = append(h.list, heapItem{
			node: &Leaf{Symbol: symbol, Count: uint64(freq[symbol])},
			seq:  h.nextSeq,
		})
		h.nextSeq++
	}
	h.Init()

	// Step 2: repeatedly pop the two lightest nodes and push their
	// combination.  The first node popped becomes the left child.

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		combined := &Internal{
			Sum:   a.node.Weight() + b.node.Weight(),
			Left:  a.node,
			Right: b.node,
		}
		heap.Push(&h, heapItem{node: combined, seq: h.nextSeq})
		h.nextSeq++
	}

	root := heap.Pop(&h).(heapItem).node
	assert.Assertf(root.Weight() == freq.Total(), "root weight %d != total %d", root.Weight(), freq.Total())

	return &Tree{root: root, numLeaves: len(symbols)}, nil
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node Node
	seq  uint32
}

type nodeHeap struct {
	list    []heapItem
	nextSeq uint32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
