// SPDX-License-Identifier: MIT
// Source: github.com/yasserrmd/zyphrax

/*
Package zyphrax implements the Zyphrax block-structured lossless
compressor: an LZ77-style hash-chain match finder feeds a tokenized
sequence stream that is entropy-coded with canonical (Huffman) prefix
codes, in the tradition of LZ4/Deflate.

A compressed artifact is a frame: a 12-byte header followed by one
independently-coded block per BlockSize chunk of input (no blocks for
empty input). Each block is either stored raw
(incompressible input) or compressed (LZ77 sequences packed into three
canonical code tables plus a bit-packed token/literal/offset stream).

# Compress

	out, err := zyphrax.Compress(src, zyphrax.DefaultFrameParams())

Options may be nil (default level 3, 64 KiB blocks):

	out, err := zyphrax.Compress(src, &zyphrax.FrameParams{Level: 7, BlockSize: 1 << 16})

# Decompress

	out, err := zyphrax.Decompress(compressed, zyphrax.DefaultDecompressOptions(len(src)))

DecompressInto targets a caller-owned buffer directly, for callers that
already have a sized destination and want to avoid an extra allocation:

	n, err := zyphrax.DecompressInto(compressed, dst)

Compression and decompression are synchronous, single-threaded per call,
and hold no state beyond the call frame: distinct invocations never
share memory and may run concurrently.
*/
package zyphrax
