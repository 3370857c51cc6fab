package hgvs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"A", "T"},
		{"T", "A"},
		{"C", "G"},
		{"G", "C"},
		{"ATCG", "CGAT"},
		{"AAATTT", "AAATTT"},
		{"GSP", "NCN"}, // non-nucleotide bases complement to N
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReverseComplement(tt.seq), "ReverseComplement(%q)", tt.seq)
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	seqs := []string{"A", "ACTG", "TTGACC", "CAT"}
	for _, seq := range seqs {
		assert.Equal(t, seq, ReverseComplement(ReverseComplement(seq)))
	}
}

func TestComplement(t *testing.T) {
	assert.Equal(t, byte('T'), Complement('A'))
	assert.Equal(t, byte('a'), Complement('t'))
	assert.Equal(t, byte('N'), Complement('Q'))
}
