package endpoint

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ariebrainware/genotator/model"
	"github.com/ariebrainware/genotator/view"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// formatText selects the tab-separated download of a disorder page.
const formatText = "txt"

// disorderCacheKey folds case so that spellings MySQL's collation treats as
// one accession share a cache entry.
func disorderCacheKey(accession string, asText bool) string {
	format := "html"
	if asText {
		format = formatText
	}
	return fmt.Sprintf("disorder:%s:%s", strings.ToLower(accession), format)
}

// ShowDisorder renders the disorder detail page for :accession, or with
// ?ct=txt the same associations as tab-separated text.
func ShowDisorder(c *gin.Context) {
	accession := strings.TrimSpace(c.Param("accession"))
	asText := c.Query("ct") == formatText

	key := disorderCacheKey(accession, asText)
	if serveCached(c, key) {
		return
	}

	db, ok := ensurePageDB(c)
	if !ok {
		return
	}

	disorder, err := model.FindDisorderByAccession(db, accession)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderError(c, http.StatusNotFound, fmt.Sprintf("No disorder with accession %s", accession), nil)
			return
		}
		renderError(c, http.StatusInternalServerError, "Failed to retrieve disorder", err)
		return
	}

	dgs, err := model.ListDisorderGenes(db, disorder.ID)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to retrieve disorder genes", err)
		return
	}

	if asText {
		var buf bytes.Buffer
		if err := view.WriteDisorderTSV(&buf, dgs); err != nil {
			renderError(c, http.StatusInternalServerError, "Failed to write disorder genes", err)
			return
		}
		c.Data(http.StatusOK, textContentType, buf.Bytes())
		storeCached(c, key, textContentType, buf.Bytes())
		return
	}

	page := view.DisorderPage{
		Layout:        layout("/disorder/" + disorder.Accession),
		Disorder:      disorder,
		DisorderGenes: dgs,
	}
	if body, ok := renderPage(c, http.StatusOK, view.PageDisorder, page); ok {
		storeCached(c, key, htmlContentType, body)
	}
}
