// Package render owns the template registry. Templates are discovered and
// parsed once at startup and shared read-only between requests; dev mode
// reparses per render so edits show up without a restart.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"
)

// ErrTemplateNotFound reports a template name with no parsed file behind it.
var ErrTemplateNotFound = errors.New("render: template not found")

// Options configures a Registry.
type Options struct {
	// Dir is the template directory tree; all .html files under it are
	// parsed, with names relative to Dir (e.g. "mobile/budget.html").
	Dir string
	// Dev reparses the tree on every render.
	Dev bool
	// Minify minifies rendered HTML before it is written out.
	Minify bool
}

// Registry holds the parsed template set.
type Registry struct {
	opts Options
	min  *minify.M

	mu   sync.RWMutex
	tmpl *template.Template
}

// New parses the template tree under opts.Dir.
func New(opts Options) (*Registry, error) {
	r := &Registry{opts: opts}
	if opts.Minify {
		r.min = minify.New()
		r.min.AddFunc("text/html", mhtml.Minify)
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-walks and re-parses the template directory, swapping the parsed
// set atomically under the lock.
func (r *Registry) Reload() error {
	t, err := parseTree(r.opts.Dir)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.tmpl = t
	r.mu.Unlock()
	return nil
}

// Lookup reports whether name resolves to a parsed template.
func (r *Registry) Lookup(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tmpl != nil && r.tmpl.Lookup(name) != nil
}

// Render executes the named template with data and returns the HTML bytes.
// Unknown names yield ErrTemplateNotFound; execution failures surface as-is.
func (r *Registry) Render(name string, data any) ([]byte, error) {
	if r.opts.Dev {
		if err := r.Reload(); err != nil {
			return nil, err
		}
	}
	r.mu.RLock()
	t := r.tmpl
	r.mu.RUnlock()
	if t == nil {
		return nil, fmt.Errorf("%w: %s (registry not initialized)", ErrTemplateNotFound, name)
	}
	target := t.Lookup(name)
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	var buf bytes.Buffer
	if err := target.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render: execute %s: %w", name, err)
	}
	if r.min != nil {
		out, err := r.min.Bytes("text/html", buf.Bytes())
		if err != nil {
			// serve unminified rather than failing the request
			return buf.Bytes(), nil
		}
		return out, nil
	}
	return buf.Bytes(), nil
}

// parseTree walks dir and parses every .html file, naming each template by
// its slash path relative to dir. html/template's ParseFiles keys templates
// by base name only, which would collide mobile/budget.html with budget.html.
func parseTree(dir string) (*template.Template, error) {
	root := template.New("_root").Funcs(sprig.HtmlFuncMap())
	var count int
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if _, err := root.New(filepath.ToSlash(rel)).Parse(string(raw)); err != nil {
			return fmt.Errorf("render: parse %s: %w", rel, err)
		}
		count++
		return nil
	})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("render: no templates found under %s", dir)
	}
	return root, nil
}
