package hgvs

import (
	"fmt"
	"regexp"
	"strings"
)

// Grammar patterns. The top-level pattern splits an HGVS-style string into
// reference id, coordinate prefix, and edit body; edit-body sub-grammars
// are tried in order (substitution, then insertion).
var (
	rePrimary    = regexp.MustCompile(`^(\S+):([pcg])\.(.*)$`)
	reProteinSub = regexp.MustCompile(`^([a-zA-Z]{1,3})(\d+)([a-zA-Z*=]{1,3})$`)
	reProteinIns = regexp.MustCompile(`^([a-zA-Z]{1,3}\d+)_([a-zA-Z]{1,3}\d+)ins(\w+)$`)
)

// Parse interprets a protein-level nomenclature string such as
// "FGFR3:p.R248C" or "ERBB2:p.P780_Y781insGSP" into a validated Protein
// descriptor. Coding- and genomic-level strings are output-only formats
// and are rejected as unsupported input.
func Parse(input string) (*Protein, error) {
	m := rePrimary.FindStringSubmatch(input)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedInput, input)
	}
	id, prefix, edits := m[1], m[2], m[3]

	// Bracketed allele sets are rejected before any further work, so a
	// bad input never reaches the network.
	if strings.Contains(edits, "[") {
		return nil, fmt.Errorf("%w: allele syntax in %q", ErrMalformedInput, input)
	}

	if prefix != "p" {
		return nil, fmt.Errorf("%w: %s-level input (only p-level strings are parsed)", ErrUnsupportedFeature, prefix)
	}

	if sm := reProteinSub.FindStringSubmatch(edits); sm != nil {
		ref, pos, alt := sm[1], sm[2], sm[3]
		if IsThreeLetterSeq(ref) && IsThreeLetterSeq(alt) {
			ref = ToSingleLetter(ref)
			alt = ToSingleLetter(alt)
		}
		start := ref + pos
		return NewProtein(id, start, start, ref, alt, EditSubstitution)
	}

	if im := reProteinIns.FindStringSubmatch(edits); im != nil {
		// Start and stop keep the flanking residue+position tokens for
		// downstream position lookup; ref is "-" by convention.
		return NewProtein(id, im[1], im[2], "-", im[3], EditInsertion)
	}

	return nil, fmt.Errorf("%w: protein edit %q matches no supported grammar", ErrMalformedInput, edits)
}
