package hgvs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubstitution(t *testing.T) {
	tests := []struct {
		input string
		want  Protein
	}{
		{
			input: "FGFR3:p.R248C",
			want:  Protein{RefSeqID: "FGFR3", Start: "R248", Stop: "R248", Ref: "R", Alt: "C", Edit: EditSubstitution},
		},
		{
			input: "FGFR3:p.Arg248Cys",
			want:  Protein{RefSeqID: "FGFR3", Start: "R248", Stop: "R248", Ref: "R", Alt: "C", Edit: EditSubstitution},
		},
		{
			input: "FGFR3:p.ARG248CYS",
			want:  Protein{RefSeqID: "FGFR3", Start: "R248", Stop: "R248", Ref: "R", Alt: "C", Edit: EditSubstitution},
		},
		{
			input: "TP53:p.R196*",
			want:  Protein{RefSeqID: "TP53", Start: "R196", Stop: "R196", Ref: "R", Alt: "*", Edit: EditSubstitution},
		},
		{
			input: "KRAS:p.G12=",
			want:  Protein{RefSeqID: "KRAS", Start: "G12", Stop: "G12", Ref: "G", Alt: "=", Edit: EditSubstitution},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *p)
		})
	}
}

func TestParseInsertion(t *testing.T) {
	p, err := Parse("ERBB2:p.P780_Y781insGSP")
	require.NoError(t, err)

	assert.Equal(t, EditInsertion, p.Edit)
	assert.Equal(t, "P780", p.Start)
	assert.Equal(t, "Y781", p.Stop)
	assert.Equal(t, "-", p.Ref)
	assert.Equal(t, "GSP", p.Alt)
	assert.Equal(t, "ERBB2:p.P780_Y781insGSP", p.HGVS())
}

// Parsing then formatting must reproduce the single-letter canonical form
// regardless of the input's amino-acid code style.
func TestParseFormatRoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"FGFR3:p.R248C", "FGFR3:p.R248C"},
		{"FGFR3:p.Arg248Cys", "FGFR3:p.R248C"},
		{"ALK:p.Phe1174Ile", "ALK:p.F1174I"},
		{"BRAF:p.Val600Glu", "BRAF:p.V600E"},
		{"TP53:p.Arg196Ter", "TP53:p.R196*"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.HGVS())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrMalformedInput},
		{"no prefix", "FGFR3 R248C", ErrMalformedInput},
		{"allele brackets", "FGFR3:p.[R248C;D641N]", ErrMalformedInput},
		// "del" matches the substitution alt slot but fails the amino-acid
		// alphabet check, mirroring the level-specific validation rules.
		{"deletion grammar", "FGFR3:p.R248del", ErrValidation},
		{"frameshift grammar", "TP53:p.R196Pfs*25", ErrMalformedInput},
		{"coding input", "ENST00000352904:c.742C>T", ErrUnsupportedFeature},
		{"genomic input", "4:g.1803564C>T", ErrUnsupportedFeature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}
