// SPDX-License-Identifier: MIT
// Source: github.com/yasserrmd/zyphrax

package zyphrax

import "encoding/binary"

// BlockCodec: per-block orchestration of the matcher and sequence model
// into a Huffman-coded bit stream, with a raw-fallback guarantee.
//
// Wire layout of one block:
//
//	byte    0 : block type (0 = raw, 1 = compressed)
//	bytes 1-4 : original (decompressed) size, little-endian uint32
//	bytes 5.. : payload
//
// A compressed payload is three serialized Huffman tables (Token,
// Literal, OffsetHighByte; huffmanTableBytes each) followed by the
// continuous LSB-first bit stream of sequences.

// parseBlock runs the LZ77 matcher over data and returns its sequence
// list. ok is false if the sequence count would exceed the src/4+256
// bound, in which case the caller must fall back to a raw
// block without inspecting seqs.
func parseBlock(data []byte, level int) (seqs []sequence, ok bool) {
	if len(data) == 0 {
		return []sequence{{}}, true
	}

	maxSeqs := len(data)/4 + 256

	m := acquireMatcher(level)
	defer releaseMatcher(m)

	litStart := 0
	pos := 0
	for pos < len(data) {
		res := m.findAndInsert(data, pos)
		if !res.found() {
			pos++
			continue
		}
		seqs = append(seqs, sequence{
			litStart: litStart,
			litLen:   pos - litStart,
			matchOff: res.offset,
			matchLen: res.length,
		})
		if len(seqs) > maxSeqs {
			return nil, false
		}
		pos += res.length
		litStart = pos
	}

	seqs = append(seqs, sequence{litStart: litStart, litLen: len(data) - litStart})
	return seqs, true
}

// encodeBlockCompressed attempts the compressed encoding of data and
// returns its payload. ok is false if the block was abandoned (sequence
// overflow); the caller must then emit a raw block. A non-nil error
// indicates an internal invariant violation in table construction, which
// is fatal rather than a signal to fall back to raw.
func encodeBlockCompressed(data []byte, level int) (payload []byte, ok bool, err error) {
	seqs, ok := parseBlock(data, level)
	if !ok {
		return nil, false, nil
	}

	tokenFreq, litFreq, offFreq := sequenceFrequencies(seqs, data)
	tokenTable, err := buildHuffmanTable(&tokenFreq)
	if err != nil {
		return nil, false, err
	}
	litTable, err := buildHuffmanTable(&litFreq)
	if err != nil {
		return nil, false, err
	}
	offTable, err := buildHuffmanTable(&offFreq)
	if err != nil {
		return nil, false, err
	}

	payload = make([]byte, 0, 3*huffmanTableBytes+len(data))
	tokenBytes := tokenTable.serialize()
	litBytes := litTable.serialize()
	offBytes := offTable.serialize()
	payload = append(payload, tokenBytes[:]...)
	payload = append(payload, litBytes[:]...)
	payload = append(payload, offBytes[:]...)

	bw := newBitWriter(payload)
	for i := range seqs {
		s := &seqs[i]
		ll, ml := tokenNibbles(s.litLen, s.matchLen)
		tok := int(ll)<<4 | int(ml)
		bw.putCode(tokenTable.codes[tok], int(tokenTable.lengths[tok]))

		if ll == tokenLitSaturate {
			writeExtraLength(bw, s.litLen-tokenLitSaturate)
		}
		for j := 0; j < s.litLen; j++ {
			sym := data[s.litStart+j]
			bw.putCode(litTable.codes[sym], int(litTable.lengths[sym]))
		}

		if s.matchLen >= minMatchLen {
			hi := byte((s.matchOff >> 8) & 0xFF)
			lo := byte(s.matchOff & 0xFF)
			bw.putCode(offTable.codes[hi], int(offTable.lengths[hi]))
			bw.putRaw(uint32(lo), 8)
			if ml == tokenMatchSaturate {
				writeExtraLength(bw, s.matchLen-3-tokenMatchSaturate)
			}
		}
	}
	bw.flush()

	return bw.bytes(), true, nil
}

// encodeBlock appends one framed block (type + size + payload) for data
// to dst, choosing the compressed encoding unless it fails to beat the
// raw fallback bound (output never exceeds blockHeaderSize+src_size).
func encodeBlock(dst []byte, data []byte, level int) ([]byte, error) {
	compressed, ok, err := encodeBlockCompressed(data, level)
	if err != nil {
		return nil, err
	}
	if ok && len(compressed) < len(data) {
		dst = append(dst, blockTypeCompressed)
		dst = appendUint32LE(dst, uint32(len(data)))
		dst = append(dst, compressed...)
		return dst, nil
	}

	dst = append(dst, blockTypeRaw)
	dst = appendUint32LE(dst, uint32(len(data)))
	dst = append(dst, data...)
	return dst, nil
}

// decodeBlock reads one framed block from src and returns its decoded
// payload plus the number of source bytes consumed.
func decodeBlock(src []byte) (data []byte, consumed int, err error) {
	if len(src) < blockHeaderSize {
		return nil, 0, ErrInputExhausted
	}
	blockType := src[0]
	origSize := binary.LittleEndian.Uint32(src[1:5])
	body := src[blockHeaderSize:]

	switch blockType {
	case blockTypeRaw:
		if uint32(len(body)) < origSize {
			return nil, 0, ErrInputExhausted
		}
		data = body[:origSize]
		return data, blockHeaderSize + int(origSize), nil

	case blockTypeCompressed:
		data, n, err := decodeBlockCompressed(body, int(origSize))
		if err != nil {
			return nil, 0, err
		}
		return data, blockHeaderSize + n, nil

	default:
		return nil, 0, ErrInvalidBlockType
	}
}

// decodeBlockCompressed decodes one compressed block payload, bounding
// every write to origSize so a forged size cannot drive unbounded
// memory growth.
func decodeBlockCompressed(body []byte, origSize int) (data []byte, consumed int, err error) {
	if len(body) < 3*huffmanTableBytes {
		return nil, 0, ErrInputExhausted
	}

	var tokenBuf, litBuf, offBuf [huffmanTableBytes]byte
	copy(tokenBuf[:], body[0:huffmanTableBytes])
	copy(litBuf[:], body[huffmanTableBytes:2*huffmanTableBytes])
	copy(offBuf[:], body[2*huffmanTableBytes:3*huffmanTableBytes])

	tokenTable := deserializeHuffmanTable(&tokenBuf)
	litTable := deserializeHuffmanTable(&litBuf)
	offTable := deserializeHuffmanTable(&offBuf)

	for _, t := range []*huffmanTable{&tokenTable, &litTable, &offTable} {
		if kraftSumQ15(&t.lengths) > 1<<huffmanMaxCodeLen {
			return nil, 0, ErrInvalidCodeTable
		}
	}

	tokenDecode := buildDecodeTable(&tokenTable.lengths)
	litDecode := buildDecodeTable(&litTable.lengths)
	offDecode := buildDecodeTable(&offTable.lengths)

	br := newBitReader(body[3*huffmanTableBytes:])
	out := make([]byte, 0, origSize)

	for {
		tok, err := decodeSymbol(br, tokenDecode)
		if err != nil {
			return nil, 0, err
		}
		ll := tok >> 4
		ml := tok & 0xF

		litLen := int(ll)
		if ll == tokenLitSaturate {
			litLen += readExtraLength(br)
		}
		if len(out)+litLen > origSize {
			return nil, 0, ErrOutputOverflow
		}
		for i := 0; i < litLen; i++ {
			sym, err := decodeSymbol(br, litDecode)
			if err != nil {
				return nil, 0, err
			}
			out = append(out, sym)
		}

		if ml == 0 {
			break
		}

		offHi, err := decodeSymbol(br, offDecode)
		if err != nil {
			return nil, 0, err
		}
		offLo := byte(br.peekLow(8))
		br.consume(8)
		offset := int(offHi)<<8 | int(offLo)

		matchLen := int(ml) + 3
		if ml == tokenMatchSaturate {
			matchLen += readExtraLength(br)
		}

		if offset == 0 || offset > len(out) {
			return nil, 0, ErrInvalidReference
		}
		if len(out)+matchLen > origSize {
			return nil, 0, ErrOutputOverflow
		}
		for i := 0; i < matchLen; i++ {
			out = append(out, out[len(out)-offset])
		}
	}

	if len(out) != origSize {
		return nil, 0, ErrInputExhausted
	}
	return out, br.bytePos() + 3*huffmanTableBytes, nil
}

func appendUint32LE(dst []byte, v uint32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
