package resolve

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/inodb/varlift/internal/ensembl"
)

// ErrNoMatchingTranscript marks a candidate list with no biotype/position
// match for the protein edit.
var ErrNoMatchingTranscript = errors.New("no matching transcript")

const biotypeProteinCoding = "protein_coding"

// SelectTranscript picks the single best candidate for a protein edit at
// the given numeric start/stop positions.
//
// Candidates are partitioned into a scored tier (protein_coding, position
// match, polyphen score present) and a backup tier (position match without
// a score). In the scored tier the highest polyphen score wins, ties broken
// by the lexicographically smallest transcript id; in the backup tier the
// lexicographically smallest transcript id wins. The polyphen preference
// is a selection heuristic, not a biological guarantee.
func SelectTranscript(candidates []ensembl.TranscriptCandidate, startPos, stopPos string) (*ensembl.TranscriptCandidate, error) {
	var scored, backup []*ensembl.TranscriptCandidate
	for i := range candidates {
		t := &candidates[i]
		if t.Biotype != biotypeProteinCoding ||
			strconv.FormatInt(t.ProteinStart, 10) != startPos ||
			strconv.FormatInt(t.ProteinEnd, 10) != stopPos {
			continue
		}
		backup = append(backup, t)
		if t.HasPolyphenScore() {
			scored = append(scored, t)
		}
	}

	switch {
	case len(scored) > 0:
		best := scored[0]
		for _, t := range scored[1:] {
			if scoredBefore(t, best) {
				best = t
			}
		}
		return best, nil
	case len(backup) > 0:
		best := backup[0]
		for _, t := range backup[1:] {
			if t.TranscriptID < best.TranscriptID {
				best = t
			}
		}
		return best, nil
	}

	return nil, fmt.Errorf("%w: no protein_coding candidate at %s-%s among %d transcripts",
		ErrNoMatchingTranscript, startPos, stopPos, len(candidates))
}

// scoredBefore orders the scored tier: higher polyphen score first, ties
// broken by smaller transcript id.
func scoredBefore(a, b *ensembl.TranscriptCandidate) bool {
	if *a.PolyphenScore != *b.PolyphenScore {
		return *a.PolyphenScore > *b.PolyphenScore
	}
	return a.TranscriptID < b.TranscriptID
}
