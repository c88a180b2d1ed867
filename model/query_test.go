package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFindDisorderByAccession(t *testing.T) {
	db := setupTestDB(t, "find_disorder")
	seeded, err := SeedExample(db)
	assert.NoError(t, err)

	found, err := FindDisorderByAccession(db, " "+ExampleAccession+" ")
	assert.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)
	assert.Equal(t, "Alzheimer Disease", found.Name)

	_, err = FindDisorderByAccession(db, "C9999999")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestListDisorderGenes_OrderAndPreloads(t *testing.T) {
	db := setupTestDB(t, "list_disorder_genes")
	disorder, err := SeedExample(db)
	assert.NoError(t, err)

	dgs, err := ListDisorderGenes(db, disorder.ID)
	assert.NoError(t, err)
	if !assert.Len(t, dgs, 3) {
		return
	}

	assert.Equal(t, "APOE", dgs[0].Gene.Symbol)
	assert.Equal(t, "PSEN1", dgs[1].Gene.Symbol)
	assert.Equal(t, "APP", dgs[2].Gene.Symbol)

	assert.Equal(t, []string{"8346443", "7566000"}, dgs[0].PubMedIDs())
	assert.Equal(t, []string{"OMIM", "GAD"}, dgs[0].SourceNames())
	assert.NotNil(t, dgs[0].HugeScore)
	assert.Nil(t, dgs[2].HugeScore)
	assert.Empty(t, dgs[2].PubMedRefs)
}

func TestListDisorderGenes_TiesKeepInsertionOrder(t *testing.T) {
	db := setupTestDB(t, "ties")
	d := Disorder{Name: "Tie", Accession: "T1"}
	assert.NoError(t, db.Create(&d).Error)

	for _, sym := range []string{"ZZZ", "AAA", "MMM"} {
		g := Gene{Symbol: sym}
		assert.NoError(t, db.Create(&g).Error)
		assert.NoError(t, db.Create(&DisorderGene{DisorderID: d.ID, GeneID: g.ID, Score: 1}).Error)
	}

	dgs, err := ListDisorderGenes(db, d.ID)
	assert.NoError(t, err)
	if assert.Len(t, dgs, 3) {
		assert.Equal(t, "ZZZ", dgs[0].Gene.Symbol)
		assert.Equal(t, "AAA", dgs[1].Gene.Symbol)
		assert.Equal(t, "MMM", dgs[2].Gene.Symbol)
	}
}

func TestListDisorderGenes_Empty(t *testing.T) {
	db := setupTestDB(t, "empty_assoc")
	d := Disorder{Name: "Orphan", Accession: "O1"}
	assert.NoError(t, db.Create(&d).Error)

	dgs, err := ListDisorderGenes(db, d.ID)
	assert.NoError(t, err)
	assert.Empty(t, dgs)
}

func TestFindGeneAndListGeneDisorders(t *testing.T) {
	db := setupTestDB(t, "gene_disorders")
	disorder, err := SeedExample(db)
	assert.NoError(t, err)

	var apoe Gene
	assert.NoError(t, db.Where("symbol = ?", "APOE").First(&apoe).Error)

	found, err := FindGeneByID(db, apoe.ID)
	assert.NoError(t, err)
	assert.Equal(t, "348", found.EntrezID)

	dgs, err := ListGeneDisorders(db, apoe.ID)
	assert.NoError(t, err)
	if assert.Len(t, dgs, 1) && assert.NotNil(t, dgs[0].Disorder) {
		assert.Equal(t, disorder.Accession, dgs[0].Disorder.Accession)
	}

	_, err = FindGeneByID(db, 424242)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestSearchDisorders(t *testing.T) {
	db := setupTestDB(t, "search")
	for _, d := range []Disorder{
		{Name: "Breast Neoplasms", Accession: "C0006142"},
		{Name: "Alzheimer Disease", Accession: "C0002395"},
		{Name: "Asthma", Accession: "C0004096"},
	} {
		d := d
		assert.NoError(t, db.Create(&d).Error)
	}

	all, total, err := SearchDisorders(db, "", 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	if assert.Len(t, all, 3) {
		assert.Equal(t, "Alzheimer Disease", all[0].Name)
		assert.Equal(t, "Asthma", all[1].Name)
	}

	byName, total, err := SearchDisorders(db, "  ALZ ", 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, byName, 1)

	byAccession, _, err := SearchDisorders(db, "c000614", 10, 0)
	assert.NoError(t, err)
	if assert.Len(t, byAccession, 1) {
		assert.Equal(t, "Breast Neoplasms", byAccession[0].Name)
	}

	page, total, err := SearchDisorders(db, "", 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	if assert.Len(t, page, 1) {
		assert.Equal(t, "Asthma", page[0].Name)
	}
}

func TestSearchDisorders_WildcardsMatchLiterally(t *testing.T) {
	db := setupTestDB(t, "search_wildcards")
	for _, d := range []Disorder{
		{Name: "Alzheimer Disease", Accession: "C0002395"},
		{Name: "Growth 50% Delay", Accession: "C9_000001"},
		{Name: "Rare! Syndrome", Accession: "C0000007"},
	} {
		d := d
		assert.NoError(t, db.Create(&d).Error)
	}

	tests := []struct {
		query    string
		expected []string
	}{
		{query: "%", expected: []string{"Growth 50% Delay"}},
		{query: "_", expected: []string{"Growth 50% Delay"}},
		{query: "50%", expected: []string{"Growth 50% Delay"}},
		{query: "!", expected: []string{"Rare! Syndrome"}},
		{query: "c0_0", expected: nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			found, total, err := SearchDisorders(db, tt.query, 10, 0)
			assert.NoError(t, err)
			assert.Equal(t, int64(len(tt.expected)), total)
			var names []string
			for _, d := range found {
				names = append(names, d.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}
