package genoseq

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeSequenceLayout(t *testing.T) {
	seq := "ACGT"
	scores := QualityScores(seq)
	buf, err := EncodeSequence(seq, scores)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// 2-bit codes 00 01 10 11 pack into one byte, then one byte per score.
	want := []byte{0x1B, 30, 30, 30, 30}
	if !bytes.Equal(buf, want) {
		t.Fatalf("encoded buffer = %x, want %x", buf, want)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	seq := strings.Repeat("GATTACA", 20) + "CC"
	scores := QualityScores(seq)
	buf, err := EncodeSequence(seq, scores)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	gotSeq, gotScores, err := DecodeSequence(buf, len(seq))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if gotSeq != seq {
		t.Fatalf("round trip mismatch: got %q", gotSeq[:20])
	}
	for i := range scores {
		if gotScores[i] != scores[i] {
			t.Fatalf("score[%d] = %d, want %d", i, gotScores[i], scores[i])
		}
	}
}

func TestEncodeNPacksAsA(t *testing.T) {
	seq := "ANGT"
	buf, err := EncodeSequence(seq, QualityScores(seq))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, _, err := DecodeSequence(buf, len(seq))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// N is indistinguishable from A in the bit lane.
	if decoded != "AAGT" {
		t.Fatalf("decoded = %q, want AAGT", decoded)
	}
	restored, err := restoreN(decoded, nPositions(seq))
	if err != nil {
		t.Fatalf("restoreN: %v", err)
	}
	if restored != seq {
		t.Fatalf("restored = %q, want %q", restored, seq)
	}
}

func TestEncodeScoreLengthMismatch(t *testing.T) {
	if _, err := EncodeSequence("ACGT", []uint8{30}); err == nil {
		t.Fatal("expected error for mismatched score count")
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	if _, _, err := DecodeSequence([]byte{0x1B}, 4); err == nil {
		t.Fatal("expected error for truncated buffer")
	}
}
