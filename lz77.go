// SPDX-License-Identifier: MIT
// Source: github.com/yasserrmd/zyphrax

package zyphrax

import "sync"

// LZ77Matcher: hash-chain dictionary and best-match search under window
// and match-length limits. State is reset per block and never
// reused across blocks; instances are pooled to avoid repeated
// allocation of the ~1.25 MiB working set.

// matchResult is a candidate back-reference found by the matcher.
type matchResult struct {
	offset int
	length int
}

// found reports whether matchResult represents an actual match.
func (m matchResult) found() bool { return m.length >= minMatchLen }

// matcher is the hash-chain dictionary:
// a hash table mapping 4-byte fingerprints to head-of-chain positions
// (biased pos+1, 0 means empty), plus a circular chain array storing the
// previous position for each absolute position modulo 2^18.
type matcher struct {
	hashTable [hashTableSize]uint32
	chain     [chainSize]uint32
	maxChain  int
}

var matcherPool = sync.Pool{
	New: func() any { return &matcher{} },
}

// acquireMatcher returns a zeroed matcher configured for the given level.
func acquireMatcher(level int) *matcher {
	m := matcherPool.Get().(*matcher)
	clear(m.hashTable[:])
	clear(m.chain[:])
	m.maxChain = maxChainForLevel[level]
	return m
}

// releaseMatcher returns m to the pool. It must not be used afterwards.
func releaseMatcher(m *matcher) {
	matcherPool.Put(m)
}

// hash4 computes the 16-bit hash slot for the 4-byte fingerprint at
// data[pos:pos+4]: multiplicative hashing with the Knuth constant.
func hash4(data []byte, pos int) uint32 {
	v := uint32(data[pos])<<24 | uint32(data[pos+1])<<16 | uint32(data[pos+2])<<8 | uint32(data[pos+3])
	return (v * hashKnuth) >> (32 - hashLog)
}

// findAndInsert updates the dictionary with the fingerprint at pos (if
// one exists) and returns the longest valid match found by walking the
// hash chain, bounded by m.maxChain candidates. It always inserts pos
// into the dictionary before searching, then search: state update
// always precedes lookup, so a match can reference the position that
// immediately precedes it.
func (m *matcher) findAndInsert(data []byte, pos int) matchResult {
	limit := len(data)
	if pos+minMatchLen > limit {
		return matchResult{}
	}

	h := hash4(data, pos)
	prevBiased := m.hashTable[h]
	m.chain[uint32(pos)&chainMask] = prevBiased
	m.hashTable[h] = uint32(pos + 1)

	if prevBiased == 0 {
		return matchResult{}
	}

	maxLen := maxMatchLen
	if pos+maxLen > limit {
		maxLen = limit - pos
	}
	if maxLen < minMatchLen {
		return matchResult{}
	}

	bestLen := minMatchLen - 1
	bestOffset := 0

	scanBiased := uint32(pos + 1)
	cur := prevBiased
	for depth := 0; cur != 0 && depth < m.maxChain; depth++ {
		delta := uint16(scanBiased - cur)
		if delta == 0 || int(delta) > pos || int(delta) > maxOffset {
			break
		}

		candidatePos := pos - int(delta)

		if bestLen < maxLen && data[pos+bestLen] == data[candidatePos+bestLen] && data[pos] == data[candidatePos] {
			length := 0
			for length < maxLen && data[pos+length] == data[candidatePos+length] {
				length++
			}
			if length > bestLen {
				bestLen = length
				bestOffset = int(delta)
				if length >= maxLen {
					break
				}
			}
		}

		cur = m.chain[uint32(candidatePos)&chainMask]
	}

	if bestLen < minMatchLen {
		return matchResult{}
	}
	return matchResult{offset: bestOffset, length: bestLen}
}
