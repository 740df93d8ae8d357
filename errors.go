// SPDX-License-Identifier: MIT
// Source: github.com/yasserrmd/zyphrax

package zyphrax

import "errors"

// Sentinel errors surfaced by the core compressor/decompressor. All are
// fatal for the current call: no partial result is ever returned
// alongside an error.
var (
	// ErrInvalidMagic is returned when a frame does not begin with the
	// expected 4-byte magic constant.
	ErrInvalidMagic = errors.New("zyphrax: invalid frame magic")
	// ErrInvalidBlockType is returned when a block's type byte is neither
	// 0 (raw) nor 1 (compressed).
	ErrInvalidBlockType = errors.New("zyphrax: invalid block type")
	// ErrInvalidCodeTable is returned when a decoded symbol maps to code
	// length 0, or a block's canonical code-length table is not a valid
	// prefix set.
	ErrInvalidCodeTable = errors.New("zyphrax: invalid huffman code table")
	// ErrInvalidReference is returned when a decoded match offset is zero
	// or exceeds the number of bytes already emitted in the block.
	ErrInvalidReference = errors.New("zyphrax: invalid match reference")
	// ErrOutputOverflow is returned when decompression would write past
	// the caller-provided destination capacity.
	ErrOutputOverflow = errors.New("zyphrax: output buffer too small")
	// ErrInputExhausted is returned when the input stream ends mid-block,
	// mid-table, or mid-sequence.
	ErrInputExhausted = errors.New("zyphrax: input exhausted")
	// ErrInvalidParams is returned when FrameParams fail validation.
	ErrInvalidParams = errors.New("zyphrax: invalid frame params")
	// ErrEmptyInput is returned when Decompress is called on a zero-length
	// source slice (a valid frame is always at least the 12-byte header).
	ErrEmptyInput = errors.New("zyphrax: empty input")

	// ErrInternal is returned when the compressor hits an internal
	// invariant violation (bug, not a malformed-input condition). Callers
	// can test for it with errors.Is(err, zyphrax.ErrInternal).
	ErrInternal = errors.New("zyphrax: internal compressor error")
)
