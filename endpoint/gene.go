package endpoint

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ariebrainware/genotator/model"
	"github.com/ariebrainware/genotator/view"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ShowGene renders a gene and the disorders it is associated with.
func ShowGene(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		renderError(c, http.StatusBadRequest, "Invalid gene ID", err)
		return
	}

	db, ok := ensurePageDB(c)
	if !ok {
		return
	}

	gene, err := model.FindGeneByID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderError(c, http.StatusNotFound, fmt.Sprintf("No gene with ID %d", id), nil)
			return
		}
		renderError(c, http.StatusInternalServerError, "Failed to retrieve gene", err)
		return
	}

	dgs, err := model.ListGeneDisorders(db, gene.ID)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to retrieve gene disorders", err)
		return
	}

	renderPage(c, http.StatusOK, view.PageGene, view.GenePage{
		Layout:        layout(fmt.Sprintf("/gene/%d", gene.ID)),
		Gene:          gene,
		DisorderGenes: dgs,
	})
}
