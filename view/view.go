package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"
	"sync"
)

//go:embed templates/*.html
var embeddedFiles embed.FS

const baseFile = "base.html"

// Page names accepted by Render.
const (
	PageIndex    = "index"
	PageDisorder = "disorder"
	PageGene     = "gene"
	PageError    = "error"
)

// Renderer holds one template set per page, each composed of the base layout
// and the page's own "title" and "content" definitions.
type Renderer struct {
	pages map[string]*template.Template
}

var (
	defaultRenderer *Renderer
	defaultOnce     sync.Once
)

// Default returns the renderer over the embedded templates. It panics if the
// embedded templates fail to parse, which only a broken build can cause.
func Default() *Renderer {
	defaultOnce.Do(func() {
		r, err := New(embeddedFiles)
		if err != nil {
			log.Panicf("parse embedded templates: %v", err)
		}
		defaultRenderer = r
	})
	return defaultRenderer
}

// New parses templates/base.html together with every other templates/*.html in fsys.
func New(fsys fs.FS) (*Renderer, error) {
	base, err := template.New(baseFile).Funcs(funcMap()).ParseFS(fsys, path.Join("templates", baseFile))
	if err != nil {
		return nil, fmt.Errorf("parse base layout: %w", err)
	}

	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if path.Base(file) == baseFile {
			continue
		}
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base for %s: %w", name, err)
		}
		if _, err := set.ParseFS(fsys, file); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", file, err)
		}
		r.pages[name] = set
	}
	return r, nil
}

func (r *Renderer) lookup(page string) (*template.Template, error) {
	set, ok := r.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}
	return set, nil
}

// Render executes the full page (base layout included) into w.
// Output is buffered so nothing is written when execution fails.
func (r *Renderer) Render(w io.Writer, page string, data interface{}) error {
	return r.execute(w, page, "base", data)
}

// RenderFragment executes only the page's content block.
func (r *Renderer) RenderFragment(w io.Writer, page string, data interface{}) error {
	return r.execute(w, page, "content", data)
}

func (r *Renderer) execute(w io.Writer, page, block string, data interface{}) error {
	set, err := r.lookup(page)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, block, data); err != nil {
		return fmt.Errorf("execute %s/%s: %w", page, block, err)
	}
	_, err = buf.WriteTo(w)
	return err
}
