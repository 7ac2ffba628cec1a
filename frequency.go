package huffzip

import (
	"fmt"
	"sort"
)

// FrequencyTable maps each symbol present in the input to its number of
// occurrences.  Every count is at least 1.
type FrequencyTable map[Symbol]uint32

// Analyze counts the occurrences of every distinct byte in data.
func Analyze(data []byte) FrequencyTable {
	var counts [NumSymbols]uint32
	for _, b := range data {
		counts[b]++
	}

	freq := make(FrequencyTable)
	for symbol, count := range counts {
		if count != 0 {
			freq[Symbol(symbol)] = count
		}
	}
	return freq
}

// Total returns the sum of all counts, i.e. the length of the input.
func (freq FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range freq {
		sum += uint64(count)
	}
	return sum
}

// Symbols returns the symbols of the table in ascending order.  This is the
// order used for tree construction and for the file layout, so that both
// sides of the codec see the same sequence no matter how Go iterates maps.
func (freq FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freq))
	for symbol := range freq {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}

// Validate checks that the table can be turned into a Huffman tree.
func (freq FrequencyTable) Validate() error {
	if len(freq) == 0 {
		return ErrEmptyInput
	}
	for symbol, count := range freq {
		if !symbol.Valid() {
			return fmt.Errorf("%w: %d", ErrAlphabetOverflow, symbol)
		}
		if count == 0 {
			return fmt.Errorf("%w: symbol %d has a frequency of 0", ErrFormat, symbol)
		}
	}
	return nil
}
