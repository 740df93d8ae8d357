// SPDX-License-Identifier: MIT
// Source: github.com/yasserrmd/zyphrax

package zyphrax

// FrameParams configures compression. A nil *FrameParams is treated
// as DefaultFrameParams() by Compress.
type FrameParams struct {
	// Level is a parser-quality hint in [0,7]. It affects only the
	// matcher's hash-chain search budget, never the wire format: the
	// same input compressed at two different levels decompresses to the
	// same bytes, just via a different number of candidate matches
	// considered.
	Level int
	// BlockSize is the target uncompressed size per block, clamped to
	// [1, 2^24-1]. Zero selects defaultBlockSize (64 KiB).
	BlockSize int
	// Checksum is a reserved flag (0 or 1). It is written into the frame
	// header's flag byte but never alters block payloads.
	Checksum int
}

// DefaultFrameParams returns FrameParams with level 3 and 64 KiB blocks.
func DefaultFrameParams() *FrameParams {
	return &FrameParams{Level: defaultLevel, BlockSize: defaultBlockSize}
}

// normalize clamps and fills in FrameParams fields, returning a new value
// so the caller's struct is never mutated.
func (p *FrameParams) normalize() (FrameParams, error) {
	if p == nil {
		return *DefaultFrameParams(), nil
	}

	out := *p
	if out.Level < 0 || out.Level > maxLevel {
		out.Level = defaultLevel
	}
	if out.BlockSize <= 0 {
		out.BlockSize = defaultBlockSize
	}
	if out.BlockSize > maxBlockSize {
		out.BlockSize = maxBlockSize
	}
	if out.Checksum != 0 && out.Checksum != 1 {
		return FrameParams{}, ErrInvalidParams
	}

	return out, nil
}

// DecompressOptions configures decompression via Decompress. DstCap bounds
// the allocated output buffer; decompression fails with ErrOutputOverflow
// if the frame's decoded size would exceed it.
type DecompressOptions struct {
	// DstCap is the maximum number of decompressed bytes the caller is
	// willing to receive.
	DstCap int
}

// DefaultDecompressOptions returns options with the given capacity.
func DefaultDecompressOptions(dstCap int) *DecompressOptions {
	return &DecompressOptions{DstCap: dstCap}
}
