// SPDX-License-Identifier: MIT
// Source: github.com/yasserrmd/zyphrax

package zyphrax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalCodesFormValidPrefixSet(t *testing.T) {
	cases := []struct {
		name string
		freq func() [huffmanAlphabetSize]int
	}{
		{"uniform", func() (f [huffmanAlphabetSize]int) {
			for i := range f {
				f[i] = 1
			}
			return
		}},
		{"skewed", func() (f [huffmanAlphabetSize]int) {
			for i := range f {
				f[i] = i + 1
			}
			return
		}},
		{"single-symbol", func() (f [huffmanAlphabetSize]int) {
			f[42] = 100
			return
		}},
		{"long-tail", func() (f [huffmanAlphabetSize]int) {
			f[0] = 1 << 20
			for i := 1; i < huffmanAlphabetSize; i++ {
				f[i] = 1
			}
			return
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			freq := tc.freq()
			table, err := buildHuffmanTable(&freq)
			require.NoError(t, err)
			for _, l := range table.lengths {
				require.LessOrEqual(t, int(l), huffmanMaxCodeLen)
			}
			sum := kraftSumQ15(&table.lengths)
			require.LessOrEqual(t, sum, uint64(1)<<huffmanMaxCodeLen)
		})
	}
}

func TestHuffmanTableSerializeRoundTrip(t *testing.T) {
	var freq [huffmanAlphabetSize]int
	for i := range freq {
		freq[i] = (i % 7) + 1
	}
	table, err := buildHuffmanTable(&freq)
	require.NoError(t, err)
	buf := table.serialize()

	restored := deserializeHuffmanTable(&buf)
	require.Equal(t, table.lengths, restored.lengths)
	require.Equal(t, table.codes, restored.codes)
}

func TestDecodeTableRoundTripsEverySymbol(t *testing.T) {
	var freq [huffmanAlphabetSize]int
	for i := range freq {
		freq[i] = (i*31 + 7) % 97
		if freq[i] == 0 {
			freq[i] = 1
		}
	}
	table, err := buildHuffmanTable(&freq)
	require.NoError(t, err)
	decodeTable := buildDecodeTable(&table.lengths)

	for sym := 0; sym < huffmanAlphabetSize; sym++ {
		l := table.lengths[sym]
		if l == 0 {
			continue
		}
		buf := make([]byte, 0, 4)
		w := newBitWriter(buf)
		w.putCode(table.codes[sym], int(l))
		w.flush()

		r := newBitReader(w.bytes())
		got, err := decodeSymbol(r, decodeTable)
		require.NoError(t, err)
		require.Equal(t, byte(sym), got)
	}
}

func TestBuildHuffmanTableEmptyFrequencies(t *testing.T) {
	var freq [huffmanAlphabetSize]int
	table, err := buildHuffmanTable(&freq)
	require.NoError(t, err)
	for _, l := range table.lengths {
		require.Zero(t, l)
	}
}

// TestBuildHuffmanTableFibonacciWeightsStaysWithinDepthLimit drives the
// Kraft-sum rebalancing trading loop in limitBitLengths: Fibonacci-like
// weights (growing linearly once they pass the cap) produce a raw
// (unbounded) merge-tree depth of several dozen, far past
// huffmanMaxCodeLen, forcing excess>0 on entry.
func TestBuildHuffmanTableFibonacciWeightsStaysWithinDepthLimit(t *testing.T) {
	var freq [huffmanAlphabetSize]int
	const cap = 1 << 40 // keeps the sequence well within int range over 256 terms
	freq[0], freq[1] = 1, 1
	for i := 2; i < huffmanAlphabetSize; i++ {
		next := freq[i-1] + freq[i-2]
		if next > cap {
			next = freq[i-1] + 1
		}
		freq[i] = next
	}

	table, err := buildHuffmanTable(&freq)
	require.NoError(t, err)

	for sym, l := range table.lengths {
		require.GreaterOrEqualf(t, int(l), 1, "symbol %d has zero length", sym)
		require.LessOrEqualf(t, int(l), huffmanMaxCodeLen, "symbol %d exceeds max code length", sym)
	}

	sum := kraftSumQ15(&table.lengths)
	require.LessOrEqual(t, sum, uint64(1)<<huffmanMaxCodeLen)
}
