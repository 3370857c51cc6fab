package hgvs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProteinValidation(t *testing.T) {
	tests := []struct {
		name                           string
		id, start, stop, ref, alt      string
		edit                           EditType
		wantErr                        error
	}{
		{"valid substitution", "FGFR3", "R248", "R248", "R", "C", EditSubstitution, nil},
		{"valid insertion", "ERBB2", "P780", "Y781", "-", "GSP", EditInsertion, nil},
		{"bad id", "FGFR-3", "R248", "R248", "R", "C", EditSubstitution, ErrValidation},
		{"bad ref alphabet", "FGFR3", "R248", "R248", "B", "C", EditSubstitution, ErrValidation},
		{"bad start token", "FGFR3", "248", "R248", "R", "C", EditSubstitution, ErrValidation},
		{"unsupported edit type", "FGFR3", "R248", "R248", "R", "C", EditType("deletion"), ErrUnsupportedFeature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProtein(tt.id, tt.start, tt.stop, tt.ref, tt.alt, tt.edit)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProteinNumericPositions(t *testing.T) {
	p, err := NewProtein("ERBB2", "P780", "Y781", "-", "GSP", EditInsertion)
	require.NoError(t, err)

	assert.Equal(t, "780", p.StartPos())
	assert.Equal(t, "781", p.StopPos())
}

func TestNewCoding(t *testing.T) {
	c, err := NewCoding("ENST00000352904", "742", "742", "1", "C", "T", EditSubstitution)
	require.NoError(t, err)

	assert.Equal(t, "ENST00000352904:c.742C>T", c.HGVS())
	assert.False(t, c.IsReverseStrand())
}

func TestCodingStrandNormalization(t *testing.T) {
	tests := []struct {
		strand string
		want   string
	}{
		{"+", "1"},
		{"-", "-1"},
		{"1", "1"},
		{"-1", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.strand, func(t *testing.T) {
			c, err := NewCoding("ENST00000389048", "3520", "3520", tt.strand, "T", "A", EditSubstitution)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Strand)
		})
	}
}

func TestCodingBadStrand(t *testing.T) {
	_, err := NewCoding("ENST00000389048", "3520", "3520", "2", "T", "A", EditSubstitution)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestNewGenomic(t *testing.T) {
	g, err := NewGenomic("4", "1803564", "1803564", "C", "T", EditSubstitution)
	require.NoError(t, err)

	assert.Equal(t, "4:g.1803564C>T", g.HGVS())
	assert.Equal(t, "chr4:1803564-1803564", g.UCSC())
	assert.Equal(t, "4:1803564-1803564", g.Ensembl())
}

// Chromosome normalization is case-insensitive and idempotent.
func TestNormalizeChromosome(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"CHR4", "4"},
		{"chr4", "4"},
		{"Chr4", "4"},
		{"4", "4"},
		{"chrX", "X"},
		{"MT", "MT"},
		{"chrMT", "MT"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeChromosome(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Idempotent: normalizing the result is a no-op.
			again, err := NormalizeChromosome(got)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}

	_, err := NormalizeChromosome("chrQ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestInfoRecords(t *testing.T) {
	p, err := NewProtein("FGFR3", "R248", "R248", "R", "C", EditSubstitution)
	require.NoError(t, err)
	assert.Equal(t, ProteinInfo{
		ID: "FGFR3", Start: "R248", Stop: "R248", Ref: "R", Alt: "C",
		EditType: EditSubstitution,
	}, p.Info())

	c, err := NewCoding("ENST00000352904", "742", "742", "1", "C", "T", EditSubstitution)
	require.NoError(t, err)
	assert.Equal(t, CodingInfo{
		ID: "ENST00000352904", Start: "742", Stop: "742", Strand: "1",
		Ref: "C", Alt: "T", EditType: EditSubstitution,
	}, c.Info())

	g, err := NewGenomic("chr4", "1803564", "1803564", "C", "T", EditSubstitution)
	require.NoError(t, err)
	assert.Equal(t, GenomicInfo{
		Chromosome: "4", Start: "1803564", Stop: "1803564",
		Ref: "C", Alt: "T", EditType: EditSubstitution,
	}, g.Info())
}

func TestFormatsDerivedFromCurrentFields(t *testing.T) {
	p, err := NewProtein("FGFR3", "R248", "R248", "R", "C", EditSubstitution)
	require.NoError(t, err)
	assert.Equal(t, "FGFR3:p.R248C", p.HGVS())

	// The protein accession is rewritten after transcript resolution; the
	// formatted string must follow the field, not a cached value.
	p.RefSeqID = "ENSP00000231803"
	assert.Equal(t, "ENSP00000231803:p.R248C", p.HGVS())
}
