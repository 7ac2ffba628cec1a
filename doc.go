// Package huffzip implements a static, two-pass Huffman coder for byte
// sequences.
//
// Compress counts the bytes of its input, builds a Huffman tree from the
// counts, and packs the input under the resulting prefix-free code.  The
// counts are stored next to the packed bits, so Decompress can rebuild the
// very same tree instead of shipping the tree itself.
//
// Every call builds its own frequency table, tree and code table.  Nothing is
// shared between calls, so independent calls may run concurrently.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffzip
