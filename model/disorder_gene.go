package model

import "gorm.io/gorm"

// DisorderGene links a disorder to a gene together with the evidence
// that supports the association. Scores are computed upstream and stored as-is.
type DisorderGene struct {
	gorm.Model
	DisorderID uint             `json:"disorder_id" gorm:"not null;index"`
	Disorder   *Disorder        `json:"disorder,omitempty"`
	GeneID     uint             `json:"gene_id" gorm:"not null;index"`
	Gene       Gene             `json:"gene"`
	Score      float64          `json:"score"`
	HugeScore  *float64         `json:"huge_score"` // nil when HuGE Navigator has no entry
	GadYes     int              `json:"gad_yes"`
	GadNo      int              `json:"gad_no"`
	GadNull    int              `json:"gad_null"`
	PubMedRefs []PubMedRef      `json:"pubmed_refs"`
	Sources    []EvidenceSource `json:"sources"`
}

// PubMedRef is a literature reference backing a disorder-gene association.
type PubMedRef struct {
	gorm.Model
	DisorderGeneID uint   `json:"-" gorm:"not null;index"`
	PMID           string `json:"pmid" gorm:"type:varchar(16);not null"`
	Position       int    `json:"-"`
}

// EvidenceSource is a database or resource that reported the association.
type EvidenceSource struct {
	gorm.Model
	DisorderGeneID uint   `json:"-" gorm:"not null;index"`
	Name           string `json:"name" gorm:"type:varchar(128)"`
	URL            string `json:"url" gorm:"type:varchar(1024)"`
	Position       int    `json:"-"`
}

// PubMedIDs returns the PMIDs in display order.
func (dg DisorderGene) PubMedIDs() []string {
	ids := make([]string, 0, len(dg.PubMedRefs))
	for _, ref := range dg.PubMedRefs {
		ids = append(ids, ref.PMID)
	}
	return ids
}

// SourceNames returns the evidence source names in display order.
func (dg DisorderGene) SourceNames() []string {
	names := make([]string, 0, len(dg.Sources))
	for _, src := range dg.Sources {
		names = append(names, src.Name)
	}
	return names
}

// Models lists every table the application migrates.
var Models = []interface{}{
	&Disorder{},
	&Gene{},
	&DisorderGene{},
	&PubMedRef{},
	&EvidenceSource{},
	&AccessLog{},
}
