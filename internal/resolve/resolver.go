package resolve

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/inodb/varlift/internal/ensembl"
	"github.com/inodb/varlift/internal/hgvs"
)

// Resolver runs the parse → annotate → select → map pipeline for one or
// more nomenclature strings. It holds no per-resolution state and is safe
// for concurrent use.
type Resolver struct {
	client  *ensembl.Client
	species string
	logger  *zap.Logger
}

// NewResolver creates a resolver over the given annotation client.
func NewResolver(client *ensembl.Client, species string) *Resolver {
	return &Resolver{
		client:  client,
		species: species,
		logger:  zap.NewNop(),
	}
}

// SetLogger sets the logger for per-stage debug messages.
func (r *Resolver) SetLogger(l *zap.Logger) {
	r.logger = l
}

// Resolve parses a protein-level nomenclature string and enriches it with
// coding- and genomic-level descriptors. Each stage is sequential; any
// stage failure is terminal for the resolution and returned alongside the
// failed aggregate.
func (r *Resolver) Resolve(ctx context.Context, input string) (*Variant, error) {
	p, err := hgvs.Parse(input)
	if err != nil {
		return nil, err
	}

	v := &Variant{Protein: p, Edit: p.Edit, state: StateParsed}
	r.logger.Debug("parsed", zap.String("input", input), zap.String("hgvs", p.HGVS()))

	if p.Edit == hgvs.EditInsertion {
		// The parsing shape of insertions is supported, their coding
		// resolution is not: there is no defined mapping strategy from an
		// inserted peptide to a unique CDS change.
		return v.fail(fmt.Errorf("%w: resolving insertion edits to coding coordinates", hgvs.ErrUnsupportedFeature))
	}

	if err := r.resolveTranscript(ctx, v); err != nil {
		return v.fail(err)
	}
	if err := r.resolveGenomic(ctx, v); err != nil {
		return v.fail(err)
	}
	return v, nil
}

// resolveTranscript queries VEP for candidate transcripts, selects the
// best match, and builds the coding descriptor from it.
func (r *Resolver) resolveTranscript(ctx context.Context, v *Variant) error {
	candidates, err := r.client.VEPLookup(ctx, v.Protein.HGVS(), r.species)
	if err != nil {
		return err
	}

	t, err := SelectTranscript(candidates, v.Protein.StartPos(), v.Protein.StopPos())
	if err != nil {
		return err
	}
	r.logger.Debug("selected transcript",
		zap.String("transcript_id", t.TranscriptID),
		zap.Int("candidates", len(candidates)))

	ref, alt, err := splitCodons(t.Codons)
	if err != nil {
		return err
	}

	coding, err := hgvs.NewCoding(
		t.TranscriptID,
		strconv.FormatInt(t.CDSStart, 10),
		strconv.FormatInt(t.CDSEnd, 10),
		strconv.Itoa(t.Strand),
		ref, alt, v.Edit,
	)
	if err != nil {
		return err
	}

	v.Coding = coding
	v.state = StateTranscriptResolved
	return nil
}

// resolveGenomic maps the coding span to genomic coordinates, applying
// reverse complement on minus-strand transcripts, and resolves the
// protein descriptor's accession to the transcript's translation id.
func (r *Resolver) resolveGenomic(ctx context.Context, v *Variant) error {
	m, err := r.client.CDSToGenomeMap(ctx, v.Coding.RefSeqID, v.Coding.Start, v.Coding.Stop)
	if err != nil {
		return err
	}

	ref, alt := v.Coding.Ref, v.Coding.Alt
	if v.Coding.IsReverseStrand() {
		ref = hgvs.ReverseComplement(ref)
		alt = hgvs.ReverseComplement(alt)
	}

	genomic, err := hgvs.NewGenomic(
		m.SeqRegionName,
		strconv.FormatInt(m.Start, 10),
		strconv.FormatInt(m.End, 10),
		ref, alt, v.Edit,
	)
	if err != nil {
		return err
	}

	lookup, err := r.client.IDLookup(ctx, v.Coding.RefSeqID, true)
	if err != nil {
		return err
	}
	if lookup.Translation == nil {
		return fmt.Errorf("%w: transcript %s has no translation", ensembl.ErrLookupFailed, v.Coding.RefSeqID)
	}

	v.Genomic = genomic
	v.Protein.RefSeqID = lookup.Translation.ID
	v.state = StateGenomicResolved
	return nil
}

// splitCodons extracts the uppercase ref/alt bases from a VEP codons
// field such as "Cgc/Tgc", stripping the lower-case flanking context.
func splitCodons(codons string) (ref, alt string, err error) {
	if codons == "" {
		return "", "", fmt.Errorf("%w: inferring ref/alt without a codons field", hgvs.ErrUnsupportedFeature)
	}
	var b strings.Builder
	for i := 0; i < len(codons); i++ {
		if codons[i] >= 'a' && codons[i] <= 'z' {
			continue
		}
		b.WriteByte(codons[i])
	}
	parts := strings.Split(b.String(), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("unexpected codons field %q", codons)
	}
	return parts[0], parts[1], nil
}
