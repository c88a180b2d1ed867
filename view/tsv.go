package view

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/ariebrainware/genotator/model"
)

// TSVHeader is the first row written by WriteDisorderTSV.
var TSVHeader = []string{
	"symbol", "gene_id", "score", "description", "chromosome", "band",
	"synonyms", "other_designations", "entrez_id", "ensembl_id",
	"huge_score", "gad_yes", "gad_no", "gad_null", "pubmed_ids", "sources",
}

// WriteDisorderTSV writes one tab-separated row per association, in the order given.
// Synonym columns keep their pipe-delimited form; list columns are comma-joined.
func WriteDisorderTSV(w io.Writer, dgs []model.DisorderGene) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(TSVHeader); err != nil {
		return err
	}
	for _, dg := range dgs {
		row := []string{
			dg.Gene.Symbol,
			strconv.FormatUint(uint64(dg.GeneID), 10),
			FormatScore(dg.Score),
			dg.Gene.FullName,
			dg.Gene.Chromosome,
			dg.Gene.Band,
			dg.Gene.Synonyms,
			dg.Gene.OtherDesignations,
			dg.Gene.EntrezID,
			dg.Gene.EnsemblID,
			FormatScore(dg.HugeScore),
			strconv.Itoa(dg.GadYes),
			strconv.Itoa(dg.GadNo),
			strconv.Itoa(dg.GadNull),
			strings.Join(dg.PubMedIDs(), ","),
			strings.Join(dg.SourceNames(), ","),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
