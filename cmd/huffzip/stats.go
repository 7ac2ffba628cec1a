package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/klauspost/compress/huff0"

	"github.com/chronos-tachyon/huffzip"
)

type stats struct {
	inputSize      int
	distinct       int
	minCode        byte
	maxCode        byte
	entropyBits    float64
	payloadBits    uint64
	compressedSize int
	reference      string
}

// computeStats measures how well data compresses, and compares the result
// with the huff0 block coder, whose size is reported as a reference only.
func computeStats(data []byte) (stats, error) {
	out := stats{inputSize: len(data)}

	compressed, err := huffzip.Compress(data)
	if err != nil {
		return stats{}, err
	}
	out.compressedSize = len(compressed)

	freq := huffzip.Analyze(data)
	out.distinct = len(freq)
	out.entropyBits = entropyBits(freq)
	if len(freq) != 0 {
		tree, err := huffzip.BuildTree(freq)
		if err != nil {
			return stats{}, err
		}
		table := huffzip.BuildCodeTable(tree)
		out.minCode = table.MinSize()
		out.maxCode = table.MaxSize()
		out.payloadBits = table.WeightedLength(freq)
	}

	out.reference = referenceSize(data)
	return out, nil
}

// entropyBits returns the Shannon lower bound, in bits, for any symbol-wise
// code over the given frequencies.
func entropyBits(freq huffzip.FrequencyTable) float64 {
	total := float64(freq.Total())
	var sum float64
	for _, count := range freq {
		c := float64(count)
		sum += c * math.Log2(total/c)
	}
	return sum
}

func referenceSize(data []byte) string {
	if len(data) == 0 {
		return "n/a (empty input)"
	}
	var s huff0.Scratch
	out, _, err := huff0.Compress1X(data, &s)
	switch {
	case errors.Is(err, huff0.ErrIncompressible):
		return "n/a (huff0: incompressible)"
	case errors.Is(err, huff0.ErrUseRLE):
		return "n/a (huff0: single symbol, use RLE)"
	case err != nil:
		return fmt.Sprintf("n/a (huff0: %v)", err)
	}
	return fmt.Sprintf("%d bytes", len(out))
}

func printStats(e env, path string) error {
	data, err := readInput(e, path)
	if err != nil {
		return err
	}
	s, err := computeStats(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.stdout, "File: %s\n", displayName(path))
	fmt.Fprintf(e.stdout, "  Input size: %d bytes\n", s.inputSize)
	fmt.Fprintf(e.stdout, "  Distinct symbols: %d\n", s.distinct)
	if s.distinct != 0 {
		fmt.Fprintf(e.stdout, "  Code lengths: %d .. %d bits\n", s.minCode, s.maxCode)
	}
	fmt.Fprintf(e.stdout, "  Entropy bound: %.0f bits\n", math.Ceil(s.entropyBits))
	fmt.Fprintf(e.stdout, "  Huffman payload: %d bits (%d bytes)\n", s.payloadBits, (s.payloadBits+7)/8)
	fmt.Fprintf(e.stdout, "  Compressed size: %d bytes\n", s.compressedSize)
	fmt.Fprintf(e.stdout, "  huff0 reference: %s\n", s.reference)
	return nil
}
