package genoseq

import "fmt"

// Base encoding (2-bit per base): A=00, C=01, G=10, T=11. N has no code of
// its own and packs as 00; chunk metadata records N positions separately so
// decoding can restore them.
const (
	baseA byte = 0x0
	baseC byte = 0x1
	baseG byte = 0x2
	baseT byte = 0x3
)

func baseCode(b byte) byte {
	switch b {
	case 'C':
		return baseC
	case 'G':
		return baseG
	case 'T':
		return baseT
	default:
		return baseA
	}
}

var codeBase = [4]byte{'A', 'C', 'G', 'T'}

// bitWriter packs values MSB-first into a byte buffer, zero-padding the
// final byte.
type bitWriter struct {
	buf  []byte
	cur  byte
	nbit uint
}

func (w *bitWriter) writeBits(v uint32, n uint) {
	for i := n; i > 0; i-- {
		w.cur = w.cur<<1 | byte((v>>(i-1))&1)
		w.nbit++
		if w.nbit == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur = 0
			w.nbit = 0
		}
	}
}

func (w *bitWriter) finish() []byte {
	if w.nbit > 0 {
		w.buf = append(w.buf, w.cur<<(8-w.nbit))
	}
	return w.buf
}

// bitReader is the counterpart of bitWriter.
type bitReader struct {
	buf []byte
	pos uint // absolute bit position
}

func (r *bitReader) readBits(n uint) (uint32, error) {
	var v uint32
	for i := uint(0); i < n; i++ {
		byteIdx := r.pos / 8
		if byteIdx >= uint(len(r.buf)) {
			return 0, fmt.Errorf("bit buffer exhausted at bit %d", r.pos)
		}
		bit := (r.buf[byteIdx] >> (7 - r.pos%8)) & 1
		v = v<<1 | uint32(bit)
		r.pos++
	}
	return v, nil
}

// EncodeSequence packs a sequence and its quality scores into a dense byte
// buffer: 2 bits per base in sequence order, then one 8-bit field per score
// in the same positional order, final byte zero-padded.
func EncodeSequence(sequence string, scores []uint8) ([]byte, error) {
	if len(scores) != len(sequence) {
		return nil, fmt.Errorf("quality score count %d does not match sequence length %d", len(scores), len(sequence))
	}
	w := bitWriter{buf: make([]byte, 0, (10*len(sequence)+7)/8)}
	for i := 0; i < len(sequence); i++ {
		w.writeBits(uint32(baseCode(sequence[i])), 2)
	}
	for _, s := range scores {
		w.writeBits(uint32(s), 8)
	}
	return w.finish(), nil
}

// DecodeSequence unpacks an encoded buffer produced by EncodeSequence back
// into the base string and quality scores for a sequence of the given
// length. N positions are not recoverable here; the caller restores them
// from metadata.
func DecodeSequence(buf []byte, length int) (string, []uint8, error) {
	want := (10*length + 7) / 8
	if len(buf) < want {
		return "", nil, fmt.Errorf("encoded buffer too short: have %d bytes, need %d for %d bases", len(buf), want, length)
	}
	r := bitReader{buf: buf}
	bases := make([]byte, length)
	for i := 0; i < length; i++ {
		code, err := r.readBits(2)
		if err != nil {
			return "", nil, err
		}
		bases[i] = codeBase[code&0x3]
	}
	scores := make([]uint8, length)
	for i := 0; i < length; i++ {
		s, err := r.readBits(8)
		if err != nil {
			return "", nil, err
		}
		scores[i] = uint8(s)
	}
	return string(bases), scores, nil
}

// nPositions lists every index holding an N, in order.
func nPositions(sequence string) []int {
	var pos []int
	for i := 0; i < len(sequence); i++ {
		if sequence[i] == 'N' {
			pos = append(pos, i)
		}
	}
	return pos
}

// restoreN rewrites the recorded N positions into a decoded base string.
func restoreN(sequence string, positions []int) (string, error) {
	if len(positions) == 0 {
		return sequence, nil
	}
	b := []byte(sequence)
	for _, p := range positions {
		if p < 0 || p >= len(b) {
			return "", fmt.Errorf("N position %d out of range for chunk of length %d", p, len(b))
		}
		b[p] = 'N'
	}
	return string(b), nil
}
