package model

import (
	"strings"

	"gorm.io/gorm"
)

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

// FindDisorderByAccession returns the disorder with the given accession,
// or gorm.ErrRecordNotFound.
func FindDisorderByAccession(db *gorm.DB, accession string) (Disorder, error) {
	var d Disorder
	if err := db.Where("accession = ?", strings.TrimSpace(accession)).First(&d).Error; err != nil {
		return Disorder{}, err
	}
	return d, nil
}

// ListDisorderGenes returns every association of a disorder with its gene and
// evidence loaded, strongest score first. Ties keep insertion order.
func ListDisorderGenes(db *gorm.DB, disorderID uint) ([]DisorderGene, error) {
	var dgs []DisorderGene
	err := db.
		Preload("Gene").
		Preload("PubMedRefs", orderByPosition).
		Preload("Sources", orderByPosition).
		Where("disorder_id = ?", disorderID).
		Order("score DESC, id ASC").
		Find(&dgs).Error
	if err != nil {
		return nil, err
	}
	return dgs, nil
}

// FindGeneByID returns a gene by primary key, or gorm.ErrRecordNotFound.
func FindGeneByID(db *gorm.DB, id uint) (Gene, error) {
	var g Gene
	if err := db.First(&g, id).Error; err != nil {
		return Gene{}, err
	}
	return g, nil
}

// ListGeneDisorders returns the associations of a gene with the disorder
// loaded, strongest score first.
func ListGeneDisorders(db *gorm.DB, geneID uint) ([]DisorderGene, error) {
	var dgs []DisorderGene
	err := db.
		Preload("Disorder").
		Preload("PubMedRefs", orderByPosition).
		Preload("Sources", orderByPosition).
		Where("gene_id = ?", geneID).
		Order("score DESC, id ASC").
		Find(&dgs).Error
	if err != nil {
		return nil, err
	}
	return dgs, nil
}

// likeEscaper escapes LIKE wildcards with '!'. A backslash ESCAPE literal
// parses differently on MySQL and SQLite.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// SearchDisorders matches q case-insensitively against name and accession.
// An empty query lists all disorders. Results are ordered by name; total is the
// unpaginated match count.
func SearchDisorders(db *gorm.DB, q string, limit, offset int) ([]Disorder, int64, error) {
	match := func(tx *gorm.DB) *gorm.DB { return tx }
	if q = strings.ToLower(strings.TrimSpace(q)); q != "" {
		like := "%" + likeEscaper.Replace(q) + "%"
		match = func(tx *gorm.DB) *gorm.DB {
			return tx.Where("LOWER(name) LIKE ? ESCAPE '!' OR LOWER(accession) LIKE ? ESCAPE '!'", like, like)
		}
	}

	var total int64
	if err := db.Model(&Disorder{}).Scopes(match).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var disorders []Disorder
	if err := db.Scopes(match).Order("name ASC, id ASC").Limit(limit).Offset(offset).Find(&disorders).Error; err != nil {
		return nil, 0, err
	}
	return disorders, total, nil
}
