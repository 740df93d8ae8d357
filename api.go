// SPDX-License-Identifier: MIT
// Source: github.com/yasserrmd/zyphrax

package zyphrax

import "encoding/binary"

// Top-level Compress/Decompress entry points, tying the frame and block
// codecs together into the public contract described in doc.go.

// CompressBound returns an upper bound on the compressed size of an
// input of srcSize bytes, assuming default-sized blocks and accounting
// for the worst case where every block falls back to raw storage.
// Callers that pass a smaller custom BlockSize to Compress should scale
// the bound accordingly: more, smaller blocks means more per-block
// framing overhead.
func CompressBound(srcSize int) int {
	if srcSize <= 0 {
		return frameHeaderSize + blockHeaderSize
	}
	return frameHeaderSize + srcSize + srcSize/255 + 256
}

// Compress encodes src into a complete Zyphrax frame. A nil params uses
// DefaultFrameParams.
func Compress(src []byte, params *FrameParams) ([]byte, error) {
	p, err := params.normalize()
	if err != nil {
		return nil, err
	}

	dst := make([]byte, 0, CompressBound(len(src)))
	dst = writeFrameHeader(dst, &p)

	for off := 0; off < len(src); off += p.BlockSize {
		end := off + p.BlockSize
		if end > len(src) {
			end = len(src)
		}
		dst, err = encodeBlock(dst, src[off:end], p.Level)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// Decompress decodes a complete Zyphrax frame. A nil opts allows an
// unbounded destination; callers handling untrusted input should pass
// explicit DecompressOptions to bound memory use.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	hdr, err := readFrameHeader(src)
	if err != nil {
		return nil, err
	}

	dstCap := -1
	if opts != nil {
		dstCap = opts.DstCap
	}

	out := make([]byte, 0, hdr.blockSize)
	pos := frameHeaderSize
	for pos < len(src) {
		// Check the block's declared size before decoding it, so a forged
		// size cannot make the decoder allocate past dstCap.
		if dstCap >= 0 && len(src)-pos >= blockHeaderSize &&
			len(out)+int(binary.LittleEndian.Uint32(src[pos+1:pos+5])) > dstCap {
			return nil, ErrOutputOverflow
		}
		block, consumed, err := decodeBlock(src[pos:])
		if err != nil {
			return nil, err
		}
		if dstCap >= 0 && len(out)+len(block) > dstCap {
			return nil, ErrOutputOverflow
		}
		out = append(out, block...)
		pos += consumed
	}
	return out, nil
}

// DecompressInto decodes a complete Zyphrax frame directly into dst,
// returning the number of bytes written. It fails with ErrOutputOverflow
// rather than growing dst beyond its existing capacity.
func DecompressInto(src []byte, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}
	if _, err := readFrameHeader(src); err != nil {
		return 0, err
	}

	n := 0
	pos := frameHeaderSize
	for pos < len(src) {
		block, consumed, err := decodeBlock(src[pos:])
		if err != nil {
			return 0, err
		}
		if n+len(block) > len(dst) {
			return 0, ErrOutputOverflow
		}
		copy(dst[n:], block)
		n += len(block)
		pos += consumed
	}
	return n, nil
}
