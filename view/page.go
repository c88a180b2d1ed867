package view

import "github.com/ariebrainware/genotator/model"

// Layout carries the values every page passes to the base template.
type Layout struct {
	AppName       string
	SiteURLRoot   string
	CanonicalPath string
}

// DisorderPage is the context of the disorder detail view.
// DisorderGenes are rendered in the order given.
type DisorderPage struct {
	Layout
	Disorder      model.Disorder
	DisorderGenes []model.DisorderGene
}

// GenePage is the context of the gene detail view.
type GenePage struct {
	Layout
	Gene          model.Gene
	DisorderGenes []model.DisorderGene
}

// IndexPage lists disorders matching a search query.
type IndexPage struct {
	Layout
	Query     string
	Disorders []model.Disorder
	Total     int64
	Limit     int
	Offset    int
}

func (p IndexPage) HasPrev() bool { return p.Offset > 0 }

func (p IndexPage) HasNext() bool { return int64(p.Offset+p.Limit) < p.Total }

func (p IndexPage) PrevOffset() int {
	if p.Offset-p.Limit < 0 {
		return 0
	}
	return p.Offset - p.Limit
}

func (p IndexPage) NextOffset() int { return p.Offset + p.Limit }

// ErrorPage is rendered for 4xx/5xx answers on HTML routes.
type ErrorPage struct {
	Layout
	Status  int
	Message string
}
