package endpoint

import (
	"net/http"

	"github.com/ariebrainware/genotator/model"
	"github.com/ariebrainware/genotator/util"
	"github.com/ariebrainware/genotator/view"
	"github.com/gin-gonic/gin"
)

// ListDisorders renders the disorder index, filtered by ?q= on name or accession.
func ListDisorders(c *gin.Context) {
	query := util.NormalizeName(c.Query("q"))
	limit, offset := pagingParams(c)

	db, ok := ensurePageDB(c)
	if !ok {
		return
	}

	disorders, total, err := model.SearchDisorders(db, query, limit, offset)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to search disorders", err)
		return
	}

	// only the unfiltered first page has a canonical URL
	canonical := ""
	if query == "" && offset == 0 {
		canonical = "/"
	}
	renderPage(c, http.StatusOK, view.PageIndex, view.IndexPage{
		Layout:    layout(canonical),
		Query:     query,
		Disorders: disorders,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	})
}
