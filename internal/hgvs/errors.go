package hgvs

import "errors"

// Sentinel errors for the parsing and validation layer. Wrapped errors
// carry the offending input; check with errors.Is.
var (
	// ErrMalformedInput marks nomenclature strings that match no known
	// grammar, including bracketed allele syntax.
	ErrMalformedInput = errors.New("malformed variant nomenclature")

	// ErrValidation marks descriptor fields that fail level-specific
	// format rules.
	ErrValidation = errors.New("descriptor validation failed")

	// ErrUnsupportedFeature marks explicitly unimplemented paths, such as
	// coding-level input or insertion resolution.
	ErrUnsupportedFeature = errors.New("unsupported feature")
)
