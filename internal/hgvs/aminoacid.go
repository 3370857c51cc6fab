package hgvs

import "strings"

// AminoAcidSingleToThree converts single letter amino acid to three letter code.
var AminoAcidSingleToThree = map[byte]string{
	'A': "Ala", 'C': "Cys", 'D': "Asp", 'E': "Glu",
	'F': "Phe", 'G': "Gly", 'H': "His", 'I': "Ile",
	'K': "Lys", 'L': "Leu", 'M': "Met", 'N': "Asn",
	'P': "Pro", 'Q': "Gln", 'R': "Arg", 'S': "Ser",
	'T': "Thr", 'V': "Val", 'W': "Trp", 'Y': "Tyr",
	'*': "Ter", 'X': "Xaa",
}

// AminoAcidThreeToSingle maps three-letter amino acid codes to single-letter.
var AminoAcidThreeToSingle map[string]byte

func init() {
	AminoAcidThreeToSingle = make(map[string]byte, len(AminoAcidSingleToThree))
	for single, three := range AminoAcidSingleToThree {
		AminoAcidThreeToSingle[three] = single
	}
}

// IsThreeLetterSeq reports whether s is a run of one or more three-letter
// amino-acid codes, case-insensitively (e.g. "Arg", "GLY", "ProTyr").
func IsThreeLetterSeq(s string) bool {
	if len(s) == 0 || len(s)%3 != 0 {
		return false
	}
	for i := 0; i < len(s); i += 3 {
		if _, ok := AminoAcidThreeToSingle[titleCase(s[i:i+3])]; !ok {
			return false
		}
	}
	return true
}

// ToSingleLetter converts a run of three-letter amino-acid codes to
// single-letter codes. Input that is not a three-letter run is returned
// unchanged.
func ToSingleLetter(s string) string {
	if !IsThreeLetterSeq(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) / 3)
	for i := 0; i < len(s); i += 3 {
		b.WriteByte(AminoAcidThreeToSingle[titleCase(s[i:i+3])])
	}
	return b.String()
}

// titleCase normalizes a three-letter code to the map's Xxx casing.
func titleCase(code string) string {
	return strings.ToUpper(code[:1]) + strings.ToLower(code[1:])
}
