// Package hgvs provides typed HGVS variant descriptors at the protein,
// coding, and genomic levels, plus the grammar parser that produces them.
package hgvs

import "fmt"

// EditType classifies the kind of sequence edit a descriptor represents.
type EditType string

// Supported edit types. Deletions, duplications, frameshifts, and allele
// sets are not supported and fail fast at construction.
const (
	EditSubstitution EditType = "substitution"
	EditInsertion    EditType = "insertion"
)

// Valid reports whether the edit type is one of the supported kinds.
func (e EditType) Valid() bool {
	return e == EditSubstitution || e == EditInsertion
}

func checkEditType(e EditType) error {
	if !e.Valid() {
		return fmt.Errorf("%w: edit type %q", ErrUnsupportedFeature, string(e))
	}
	return nil
}
