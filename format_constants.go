// SPDX-License-Identifier: MIT
// Source: github.com/yasserrmd/zyphrax

package zyphrax

// Frame and block wire-format constants.

const (
	// frameMagic is the little-endian frame magic (bytes "YFYX" on the wire).
	frameMagic = 0x58594659

	// frameHeaderSize is the fixed size, in bytes, of a frame header.
	frameHeaderSize = 12

	// maxBlockSize is the largest representable block_size: a 24-bit
	// little-endian field.
	maxBlockSize = 1<<24 - 1

	// defaultBlockSize is used when FrameParams.BlockSize is zero.
	defaultBlockSize = 64 << 10

	// defaultLevel is used when FrameParams.Level is out of range.
	defaultLevel = 3

	// maxLevel is the highest recognized parser-quality hint.
	maxLevel = 7
)

// Block type bytes (outside the bit stream).
const (
	blockTypeRaw        = 0
	blockTypeCompressed = 1
)

// Block framing: type byte + 4-byte little-endian original size precede
// both raw and compressed payloads. Raw blocks carry the size explicitly
// rather than leaving it implicit in the remaining frame bytes.
const blockHeaderSize = 1 + 4

// Match-length / token constants.
const (
	minMatchLen = 4   // shortest representable match
	maxMatchLen = 258 // longest match the matcher emits; longer runs become several matches
	maxOffset   = 65535
)

// Token nibble saturation points: a saturated nibble value of 15
// triggers the extra-byte chain encoding.
const (
	tokenLitSaturate   = 15
	tokenMatchSaturate = 15
	extraChainByte     = 255
)

// Huffman table constants.
const (
	huffmanAlphabetSize = 256
	huffmanMaxCodeLen   = 15
	huffmanTableBytes   = huffmanAlphabetSize / 2 // 2 packed 4-bit lengths per byte
	huffmanDecodeBits   = 15
	huffmanDecodeSize   = 1 << huffmanDecodeBits
)

// LZ77 matcher constants.
const (
	hashLog       = 16
	hashTableSize = 1 << hashLog
	hashKnuth     = 2654435761
	chainBits     = 18
	chainSize     = 1 << chainBits
	chainMask     = chainSize - 1
)

// maxChainForLevel returns the hash-chain probe budget for a given parser
// level (0-7): it only affects the matcher's search budget, never the wire format.
// Levels outside [0,7] are clamped by the caller before this is consulted.
var maxChainForLevel = [maxLevel + 1]int{
	0: 16,
	1: 32,
	2: 64,
	3: 256,
	4: 512,
	5: 1024,
	6: 2048,
	7: 4096,
}
