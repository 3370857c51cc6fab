package ensembl

// TranscriptCandidate is one transcript consequence from a VEP HGVS query.
type TranscriptCandidate struct {
	TranscriptID  string   `json:"transcript_id"`
	Biotype       string   `json:"biotype"`
	ProteinStart  int64    `json:"protein_start"`
	ProteinEnd    int64    `json:"protein_end"`
	Codons        string   `json:"codons"`
	PolyphenScore *float64 `json:"polyphen_score"`
	CDSStart      int64    `json:"cds_start"`
	CDSEnd        int64    `json:"cds_end"`
	Strand        int      `json:"strand"`
}

// HasPolyphenScore reports whether the candidate carries a polyphen score.
func (t *TranscriptCandidate) HasPolyphenScore() bool {
	return t.PolyphenScore != nil
}

// vepResult is one element of the VEP HGVS endpoint's response array.
type vepResult struct {
	AlleleString           string                `json:"allele_string"`
	Start                  int64                 `json:"start"`
	End                    int64                 `json:"end"`
	TranscriptConsequences []TranscriptCandidate `json:"transcript_consequences"`
}

// Translation is the protein product entry in a lookup response.
type Translation struct {
	ID     string `json:"id"`
	Start  int64  `json:"start"`
	End    int64  `json:"end"`
	Length int    `json:"length"`
}

// LookupResult is the response shape of the lookup endpoints. Gene results
// carry child Transcript entries when expansion is requested; transcript
// results carry a Translation; translation results carry a Parent id.
type LookupResult struct {
	ID          string         `json:"id"`
	ObjectType  string         `json:"object_type"`
	Biotype     string         `json:"biotype"`
	Parent      string         `json:"Parent"`
	DisplayName string         `json:"display_name"`
	Translation *Translation   `json:"Translation"`
	Transcript  []LookupResult `json:"Transcript"`
}

// Mapping is a single CDS-to-genome mapping span.
type Mapping struct {
	SeqRegionName string `json:"seq_region_name"`
	Start         int64  `json:"start"`
	End           int64  `json:"end"`
	Strand        int    `json:"strand"`
}

type mapResponse struct {
	Mappings []Mapping `json:"mappings"`
}

type sequenceResponse struct {
	ID  string `json:"id"`
	Seq string `json:"seq"`
}
