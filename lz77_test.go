// SPDX-License-Identifier: MIT
// Source: github.com/yasserrmd/zyphrax

package zyphrax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatcherFindsRepeatedPattern(t *testing.T) {
	data := []byte("ABCDABCDABCD")
	m := acquireMatcher(defaultLevel)
	defer releaseMatcher(m)

	var found bool
	for pos := 0; pos < len(data); pos++ {
		res := m.findAndInsert(data, pos)
		if res.found() {
			found = true
			require.GreaterOrEqual(t, res.length, minMatchLen)
			require.LessOrEqual(t, res.offset, pos)
			require.Greater(t, res.offset, 0)
		}
	}
	require.True(t, found, "expected at least one match in a repeating pattern")
}

func TestMatcherNoMatchOnAllUniqueBytes(t *testing.T) {
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i % 251) // stays mostly non-repeating within the window
	}
	m := acquireMatcher(0)
	defer releaseMatcher(m)

	for pos := 0; pos < 4; pos++ {
		res := m.findAndInsert(data, pos)
		require.False(t, res.found())
	}
}

func TestMatcherRejectsShortTail(t *testing.T) {
	data := []byte("AB")
	m := acquireMatcher(defaultLevel)
	defer releaseMatcher(m)
	res := m.findAndInsert(data, 0)
	require.False(t, res.found())
}

func TestAcquireMatcherClearsPoolState(t *testing.T) {
	m1 := acquireMatcher(7)
	m1.hashTable[0] = 999
	m1.chain[0] = 888
	releaseMatcher(m1)

	m2 := acquireMatcher(0)
	defer releaseMatcher(m2)
	require.Zero(t, m2.hashTable[0])
	require.Zero(t, m2.chain[0])
	require.Equal(t, maxChainForLevel[0], m2.maxChain)
}
