package hgvs

import (
	"fmt"
	"regexp"
	"strings"
)

// Level-specific validation patterns. A descriptor that fails its pattern
// never exists: the New* constructors validate before returning.
var (
	reAlnum       = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	reNucSeq      = regexp.MustCompile(`^([ACTG]+|-)$`)
	reNucPos      = regexp.MustCompile(`^[\d+-]+$`)
	reProteinSeq  = regexp.MustCompile(`^([ACDEFGHIKLMNPQRSTVWY]+|[-*=])$`)
	reProteinPos  = regexp.MustCompile(`^[A-Za-z]{1,3}\d+$`)
	reProteinStop = regexp.MustCompile(`^[A-Za-z]{1,3}\d*$`)
	reChromosome  = regexp.MustCompile(`^[MTXY0-9]+$`)
	reNonDigit    = regexp.MustCompile(`[^0-9]`)
)

// Protein describes a variant at the protein level. Positions are anchored
// to a reference residue, so Start and Stop hold residue+position tokens
// like "R248" rather than bare numbers.
type Protein struct {
	RefSeqID  string
	Start     string
	Stop      string
	Ref       string
	Alt       string
	Edit      EditType
	Predicted bool
}

// NewProtein builds a validated protein-level descriptor. Three-letter
// amino-acid codes in ref and alt are normalized to single-letter codes
// when both fields are three-letter runs.
func NewProtein(refSeqID, start, stop, ref, alt string, edit EditType) (*Protein, error) {
	if err := checkEditType(edit); err != nil {
		return nil, err
	}
	if IsThreeLetterSeq(ref) && IsThreeLetterSeq(alt) {
		ref = ToSingleLetter(ref)
		alt = ToSingleLetter(alt)
	}
	p := &Protein{
		RefSeqID: refSeqID,
		Start:    start,
		Stop:     stop,
		Ref:      ref,
		Alt:      alt,
		Edit:     edit,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Protein) validate() error {
	switch {
	case !reAlnum.MatchString(p.RefSeqID):
		return fmt.Errorf("%w: protein reference id %q is not alphanumeric", ErrValidation, p.RefSeqID)
	case !reProteinSeq.MatchString(p.Ref):
		return fmt.Errorf("%w: protein ref %q", ErrValidation, p.Ref)
	case !reProteinSeq.MatchString(p.Alt):
		return fmt.Errorf("%w: protein alt %q", ErrValidation, p.Alt)
	case !reProteinPos.MatchString(p.Start):
		return fmt.Errorf("%w: protein start %q", ErrValidation, p.Start)
	case !reProteinStop.MatchString(p.Stop):
		return fmt.Errorf("%w: protein stop %q", ErrValidation, p.Stop)
	}
	return nil
}

// StartPos returns the bare numeric start position, stripping the residue
// letters from the position token.
func (p *Protein) StartPos() string {
	return reNonDigit.ReplaceAllString(p.Start, "")
}

// StopPos returns the bare numeric stop position.
func (p *Protein) StopPos() string {
	return reNonDigit.ReplaceAllString(p.Stop, "")
}

// HGVS returns the canonical protein-level nomenclature string. It is
// derived from the current fields on every call.
func (p *Protein) HGVS() string {
	switch p.Edit {
	case EditSubstitution:
		return fmt.Sprintf("%s:p.%s%s", p.RefSeqID, p.Start, p.Alt)
	case EditInsertion:
		return fmt.Sprintf("%s:p.%s_%sins%s", p.RefSeqID, p.Start, p.Stop, p.Alt)
	}
	return ""
}

// ProteinInfo is the structured read surface for a protein descriptor.
type ProteinInfo struct {
	ID        string   `json:"id"`
	Start     string   `json:"start"`
	Stop      string   `json:"stop"`
	Ref       string   `json:"ref"`
	Alt       string   `json:"alt"`
	EditType  EditType `json:"edit_type"`
	Predicted bool     `json:"predicted"`
}

// Info returns the descriptor's fields as a record.
func (p *Protein) Info() ProteinInfo {
	return ProteinInfo{
		ID:        p.RefSeqID,
		Start:     p.Start,
		Stop:      p.Stop,
		Ref:       p.Ref,
		Alt:       p.Alt,
		EditType:  p.Edit,
		Predicted: p.Predicted,
	}
}

// Coding describes a variant in transcript-relative CDS coordinates.
type Coding struct {
	RefSeqID  string
	Start     string
	Stop      string
	Strand    string
	Ref       string
	Alt       string
	Edit      EditType
	Predicted bool
}

// NewCoding builds a validated coding-level descriptor. Strand accepts
// "+"/"-" as aliases for "1"/"-1" and stores the normalized form.
func NewCoding(refSeqID, start, stop, strand, ref, alt string, edit EditType) (*Coding, error) {
	if err := checkEditType(edit); err != nil {
		return nil, err
	}
	c := &Coding{
		RefSeqID: refSeqID,
		Start:    start,
		Stop:     stop,
		Strand:   NormalizeStrand(strand),
		Ref:      ref,
		Alt:      alt,
		Edit:     edit,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Coding) validate() error {
	switch {
	case !reAlnum.MatchString(c.RefSeqID):
		return fmt.Errorf("%w: coding reference id %q is not alphanumeric", ErrValidation, c.RefSeqID)
	case !reNucSeq.MatchString(c.Ref):
		return fmt.Errorf("%w: coding ref %q", ErrValidation, c.Ref)
	case !reNucSeq.MatchString(c.Alt):
		return fmt.Errorf("%w: coding alt %q", ErrValidation, c.Alt)
	case !reNucPos.MatchString(c.Start):
		return fmt.Errorf("%w: coding start %q", ErrValidation, c.Start)
	case !reNucPos.MatchString(c.Stop):
		return fmt.Errorf("%w: coding stop %q", ErrValidation, c.Stop)
	case c.Strand != "1" && c.Strand != "-1":
		return fmt.Errorf("%w: strand %q (expected 1 or -1)", ErrValidation, c.Strand)
	}
	return nil
}

// IsReverseStrand reports whether the transcript is on the minus strand.
func (c *Coding) IsReverseStrand() bool {
	return c.Strand == "-1"
}

// HGVS returns the canonical coding-level nomenclature string.
func (c *Coding) HGVS() string {
	if c.Edit == EditSubstitution {
		return fmt.Sprintf("%s:c.%s%s>%s", c.RefSeqID, c.Start, c.Ref, c.Alt)
	}
	return ""
}

// CodingInfo is the structured read surface for a coding descriptor.
type CodingInfo struct {
	ID        string   `json:"id"`
	Start     string   `json:"start"`
	Stop      string   `json:"stop"`
	Strand    string   `json:"strand"`
	Ref       string   `json:"ref"`
	Alt       string   `json:"alt"`
	EditType  EditType `json:"edit_type"`
	Predicted bool     `json:"predicted"`
}

// Info returns the descriptor's fields as a record.
func (c *Coding) Info() CodingInfo {
	return CodingInfo{
		ID:        c.RefSeqID,
		Start:     c.Start,
		Stop:      c.Stop,
		Strand:    c.Strand,
		Ref:       c.Ref,
		Alt:       c.Alt,
		EditType:  c.Edit,
		Predicted: c.Predicted,
	}
}

// NormalizeStrand maps the "+"/"-" strand aliases to "1"/"-1". Unknown
// values pass through for validation to reject.
func NormalizeStrand(strand string) string {
	switch strand {
	case "+":
		return "1"
	case "-":
		return "-1"
	}
	return strand
}

// Genomic describes a variant in chromosome coordinates. It shares the
// coding level's sequence and position rules but owns a chromosome name
// instead of a transcript accession.
type Genomic struct {
	Chromosome string
	Start      string
	Stop       string
	Ref        string
	Alt        string
	Edit       EditType
}

// NewGenomic builds a validated genomic-level descriptor. The chromosome
// name is normalized before validation (see NormalizeChromosome).
func NewGenomic(chromosome, start, stop, ref, alt string, edit EditType) (*Genomic, error) {
	if err := checkEditType(edit); err != nil {
		return nil, err
	}
	chrom, err := NormalizeChromosome(chromosome)
	if err != nil {
		return nil, err
	}
	g := &Genomic{
		Chromosome: chrom,
		Start:      start,
		Stop:       stop,
		Ref:        ref,
		Alt:        alt,
		Edit:       edit,
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Genomic) validate() error {
	switch {
	case !reNucSeq.MatchString(g.Ref):
		return fmt.Errorf("%w: genomic ref %q", ErrValidation, g.Ref)
	case !reNucSeq.MatchString(g.Alt):
		return fmt.Errorf("%w: genomic alt %q", ErrValidation, g.Alt)
	case !reNucPos.MatchString(g.Start):
		return fmt.Errorf("%w: genomic start %q", ErrValidation, g.Start)
	case !reNucPos.MatchString(g.Stop):
		return fmt.Errorf("%w: genomic stop %q", ErrValidation, g.Stop)
	}
	return nil
}

// NormalizeChromosome strips an optional case-insensitive "chr" prefix and
// validates the remainder against [MTXY0-9]+. Normalization is idempotent:
// "CHR4", "chr4", and "4" all map to "4".
func NormalizeChromosome(chromosome string) (string, error) {
	chrom := strings.ToUpper(chromosome)
	chrom = strings.TrimPrefix(chrom, "CHR")
	if !reChromosome.MatchString(chrom) {
		return "", fmt.Errorf("%w: chromosome %q (expected (chr)?[MTXY0-9]+)", ErrValidation, chromosome)
	}
	return chrom, nil
}

// HGVS returns the canonical genomic-level nomenclature string.
func (g *Genomic) HGVS() string {
	if g.Edit == EditSubstitution {
		return fmt.Sprintf("%s:g.%s%s>%s", g.Chromosome, g.Start, g.Ref, g.Alt)
	}
	return ""
}

// UCSC returns the locus in UCSC browser form: chr4:1803564-1803564.
func (g *Genomic) UCSC() string {
	return fmt.Sprintf("chr%s:%s-%s", g.Chromosome, g.Start, g.Stop)
}

// Ensembl returns the locus in Ensembl form: 4:1803564-1803564.
func (g *Genomic) Ensembl() string {
	return fmt.Sprintf("%s:%s-%s", g.Chromosome, g.Start, g.Stop)
}

// GenomicInfo is the structured read surface for a genomic descriptor.
type GenomicInfo struct {
	Chromosome string   `json:"chromosome"`
	Start      string   `json:"start"`
	Stop       string   `json:"stop"`
	Ref        string   `json:"ref"`
	Alt        string   `json:"alt"`
	EditType   EditType `json:"edit_type"`
}

// Info returns the descriptor's fields as a record.
func (g *Genomic) Info() GenomicInfo {
	return GenomicInfo{
		Chromosome: g.Chromosome,
		Start:      g.Start,
		Stop:       g.Stop,
		Ref:        g.Ref,
		Alt:        g.Alt,
		EditType:   g.Edit,
	}
}
