package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ExampleAccession is the accession of the disorder created by SeedExample.
const ExampleAccession = "C0002395"

func floatPtr(v float64) *float64 { return &v }

type exampleRow struct {
	gene      Gene
	score     float64
	hugeScore *float64
	gad       [3]int
	pmids     []string
	sources   []EvidenceSource
}

var exampleRows = []exampleRow{
	{
		gene: Gene{
			Symbol: "APOE", FullName: "apolipoprotein E", Chromosome: "19", Band: "19q13.32",
			Synonyms: "AD2|APO-E|LDLCQ5|LPG", OtherDesignations: "apolipoprotein E3|apolipoprotein E4",
			EntrezID: "348", EnsemblID: "ENSG00000130203",
		},
		score: 18.5, hugeScore: floatPtr(97.3), gad: [3]int{112, 41, 6},
		pmids:   []string{"8346443", "7566000"},
		sources: []EvidenceSource{{Name: "OMIM", URL: "https://omim.org/entry/107741"}, {Name: "GAD", URL: "https://geneticassociationdb.nih.gov/"}},
	},
	{
		gene: Gene{
			Symbol: "PSEN1", FullName: "presenilin 1", Chromosome: "14", Band: "14q24.2",
			Synonyms: "AD3|FAD|PS1|S182", OtherDesignations: "presenilin-1",
			EntrezID: "5663", EnsemblID: "ENSG00000080815",
		},
		score: 12.25, hugeScore: floatPtr(64), gad: [3]int{37, 22, 1},
		pmids:   []string{"7596406"},
		sources: []EvidenceSource{{Name: "OMIM", URL: "https://omim.org/entry/104311"}},
	},
	{
		gene: Gene{
			Symbol: "APP", FullName: "amyloid beta precursor protein", Chromosome: "21", Band: "21q21.3",
			Synonyms: "AAA|ABETA|ABPP|AD1|CVAP|PN2", EntrezID: "351",
		},
		score: 9.75,
	},
}

// SeedExample creates a small Alzheimer disease data set for local
// development and tests. It is idempotent: an existing disorder is returned unchanged.
func SeedExample(db *gorm.DB) (Disorder, error) {
	existing, err := FindDisorderByAccession(db, ExampleAccession)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Disorder{}, err
	}

	disorder := Disorder{Name: "Alzheimer Disease", Accession: ExampleAccession}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&disorder).Error; err != nil {
			return fmt.Errorf("seed disorder: %w", err)
		}
		for _, row := range exampleRows {
			gene := row.gene
			if err := tx.Create(&gene).Error; err != nil {
				return fmt.Errorf("seed gene %s: %w", gene.Symbol, err)
			}
			dg := DisorderGene{
				DisorderID: disorder.ID,
				GeneID:     gene.ID,
				Score:      row.score,
				HugeScore:  row.hugeScore,
				GadYes:     row.gad[0],
				GadNo:      row.gad[1],
				GadNull:    row.gad[2],
			}
			for i, pmid := range row.pmids {
				dg.PubMedRefs = append(dg.PubMedRefs, PubMedRef{PMID: pmid, Position: i})
			}
			for i, src := range row.sources {
				src.Position = i
				dg.Sources = append(dg.Sources, src)
			}
			if err := tx.Create(&dg).Error; err != nil {
				return fmt.Errorf("seed association %s: %w", gene.Symbol, err)
			}
		}
		return nil
	})
	if err != nil {
		return Disorder{}, err
	}
	return disorder, nil
}
