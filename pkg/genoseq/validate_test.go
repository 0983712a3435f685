package genoseq

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateSequence(t *testing.T) {
	seq, err := ValidateSequence(strings.Repeat("acgtn", 25))
	if err != nil {
		t.Fatalf("valid sequence rejected: %v", err)
	}
	if seq != strings.Repeat("ACGTN", 25) {
		t.Fatalf("expected uppercase normalization, got %q", seq[:10])
	}
}

func TestValidateSequenceRejects(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "ACGT"},
		{"digits", "123"},
		{"bad char", strings.Repeat("ACGT", 25) + "ACGX"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ValidateSequence(tc.input); !errors.Is(err, ErrInvalidSequence) {
				t.Fatalf("expected ErrInvalidSequence, got %v", err)
			}
		})
	}
}

func TestCleanSequence(t *testing.T) {
	got := CleanSequence("acg t-1N\nx")
	if got != "ACGTN" {
		t.Fatalf("expected ACGTN, got %q", got)
	}
}
