package endpoint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ariebrainware/genotator/model"
	"github.com/ariebrainware/genotator/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DisorderDetail is the JSON form of a disorder page.
type DisorderDetail struct {
	Disorder      model.Disorder       `json:"disorder"`
	DisorderGenes []model.DisorderGene `json:"disorder_genes"`
}

// GeneDetail is the JSON form of a gene page.
type GeneDetail struct {
	Gene          model.Gene           `json:"gene"`
	DisorderGenes []model.DisorderGene `json:"disorder_genes"`
}

// GetDisorderJSON returns a disorder and its ordered gene associations.
func GetDisorderJSON(c *gin.Context) {
	accession := strings.TrimSpace(c.Param("accession"))

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	disorder, err := model.FindDisorderByAccession(db, accession)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.CallErrorNotFound(c, util.APIErrorParams{
				Msg: "Disorder not found",
				Err: fmt.Errorf("no disorder with accession %s", accession),
			})
			return
		}
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve disorder",
			Err: err,
		})
		return
	}

	dgs, err := model.ListDisorderGenes(db, disorder.ID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve disorder genes",
			Err: err,
		})
		return
	}
	if dgs == nil {
		dgs = []model.DisorderGene{}
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Disorder retrieved",
		Data: DisorderDetail{Disorder: disorder, DisorderGenes: dgs},
	})
}

// GetGeneJSON returns a gene and the disorders it is associated with.
func GetGeneJSON(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid gene ID",
			Err: err,
		})
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	gene, err := model.FindGeneByID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.CallErrorNotFound(c, util.APIErrorParams{
				Msg: "Gene not found",
				Err: fmt.Errorf("no gene with ID %d", id),
			})
			return
		}
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve gene",
			Err: err,
		})
		return
	}

	dgs, err := model.ListGeneDisorders(db, gene.ID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve gene disorders",
			Err: err,
		})
		return
	}
	if dgs == nil {
		dgs = []model.DisorderGene{}
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Gene retrieved",
		Data: GeneDetail{Gene: gene, DisorderGenes: dgs},
	})
}
