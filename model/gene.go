package model

import "gorm.io/gorm"

// Gene is a human gene as described by NCBI Gene.
// Synonyms and OtherDesignations are stored pipe-delimited, e.g. "BRCC1|FANCS".
type Gene struct {
	gorm.Model
	Symbol            string `json:"symbol" gorm:"type:varchar(64);not null;index"`
	FullName          string `json:"full_name" gorm:"type:varchar(512)"`
	Chromosome        string `json:"chromosome" gorm:"type:varchar(16)"`
	Band              string `json:"band" gorm:"type:varchar(64)"`
	Synonyms          string `json:"synonyms" gorm:"type:text"`
	OtherDesignations string `json:"other_designations" gorm:"type:text"`
	EntrezID          string `json:"entrez_id" gorm:"type:varchar(32);index"`
	EnsemblID         string `json:"ensembl_id" gorm:"type:varchar(32);index"`
}
