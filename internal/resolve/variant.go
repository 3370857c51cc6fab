// Package resolve ties the descriptor model, the annotation service, and
// the transcript selection heuristic into one variant resolution pipeline.
package resolve

import "github.com/inodb/varlift/internal/hgvs"

// State tracks a Variant's position in the resolution lifecycle. The
// lifecycle is strictly monotonic; a stage failure moves the aggregate to
// the terminal StateFailed, never back to an earlier usable state.
type State int

const (
	StateParsed State = iota
	StateTranscriptResolved
	StateGenomicResolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateParsed:
		return "parsed"
	case StateTranscriptResolved:
		return "transcript_resolved"
	case StateGenomicResolved:
		return "genomic_resolved"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Variant aggregates the three coordinate-level descriptors of one
// resolved variant. It owns its descriptors exclusively; descriptors hold
// no back-reference to the aggregate.
type Variant struct {
	Protein *hgvs.Protein
	Coding  *hgvs.Coding
	Genomic *hgvs.Genomic
	Edit    hgvs.EditType

	state State
	err   error
}

// State returns the aggregate's lifecycle state.
func (v *Variant) State() State {
	return v.state
}

// Err returns the error that moved the aggregate to StateFailed, if any.
func (v *Variant) Err() error {
	return v.err
}

// Resolved reports whether all three descriptor levels are available.
func (v *Variant) Resolved() bool {
	return v.state == StateGenomicResolved
}

func (v *Variant) fail(err error) (*Variant, error) {
	v.state = StateFailed
	v.err = err
	return v, err
}

// HGVS returns the canonical nomenclature triple in genomic, coding,
// protein order. Levels not yet reached in the lifecycle yield empty
// strings.
func (v *Variant) HGVS() (genomic, coding, protein string) {
	if v.Genomic != nil {
		genomic = v.Genomic.HGVS()
	}
	if v.Coding != nil {
		coding = v.Coding.HGVS()
	}
	if v.Protein != nil {
		protein = v.Protein.HGVS()
	}
	return genomic, coding, protein
}

// Info returns the structured per-level records in genomic, coding,
// protein order. Levels not yet reached yield zero records.
func (v *Variant) Info() (gi hgvs.GenomicInfo, ci hgvs.CodingInfo, pi hgvs.ProteinInfo) {
	if v.Genomic != nil {
		gi = v.Genomic.Info()
	}
	if v.Coding != nil {
		ci = v.Coding.Info()
	}
	if v.Protein != nil {
		pi = v.Protein.Info()
	}
	return gi, ci, pi
}

// UCSC returns the genomic locus in UCSC browser form, or "" when the
// genomic level is not resolved.
func (v *Variant) UCSC() string {
	if v.Genomic == nil {
		return ""
	}
	return v.Genomic.UCSC()
}

// Ensembl returns the genomic locus in Ensembl form, or "" when the
// genomic level is not resolved.
func (v *Variant) Ensembl() string {
	if v.Genomic == nil {
		return ""
	}
	return v.Genomic.Ensembl()
}
