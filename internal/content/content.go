// Package content loads the markdown bodies of informational pages (about,
// map) from a local content directory. Files carry optional YAML front
// matter; bodies are rendered to HTML and sanitized before they reach a
// template.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// ErrNotFound reports a slug with no markdown file behind it.
var ErrNotFound = errors.New("content: not found")

// Page is a rendered informational page body plus its front matter.
type Page struct {
	Slug      string
	Title     string
	Summary   string
	Body      template.HTML
	UpdatedAt time.Time
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	UpdatedAt string `yaml:"updated_at"`
}

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy   = bluemonday.UGCPolicy()
)

// Load reads <dir>/<slug>.md, renders it and returns the sanitized page.
// Slugs are restricted to simple names; anything path-like is rejected.
func Load(dir, slug string) (Page, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}
	raw, err := os.ReadFile(filepath.Join(dir, slug+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return Page{}, ErrNotFound
		}
		return Page{}, fmt.Errorf("content: read %s: %w", slug, err)
	}

	fm, body := splitFrontMatter(raw)
	var meta frontMatter
	if len(fm) > 0 {
		if err := yaml.Unmarshal(fm, &meta); err != nil {
			return Page{}, fmt.Errorf("content: front matter of %s: %w", slug, err)
		}
	}

	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return Page{}, fmt.Errorf("content: render %s: %w", slug, err)
	}

	page := Page{
		Slug:    slug,
		Title:   meta.Title,
		Summary: meta.Summary,
		Body:    template.HTML(policy.SanitizeBytes(buf.Bytes())),
	}
	if meta.UpdatedAt != "" {
		if ts, err := time.Parse("2006-01-02", meta.UpdatedAt); err == nil {
			page.UpdatedAt = ts
		}
	}
	return page, nil
}

// splitFrontMatter separates a leading "---" YAML block from the markdown
// body. Files without front matter are returned whole.
func splitFrontMatter(raw []byte) (fm, body []byte) {
	const delim = "---"
	s := string(raw)
	if !strings.HasPrefix(s, delim) {
		return nil, raw
	}
	rest := strings.TrimPrefix(s, delim)
	rest = strings.TrimPrefix(rest, "\n")
	end := strings.Index(rest, "\n"+delim)
	if end < 0 {
		return nil, raw
	}
	fm = []byte(rest[:end])
	body = []byte(strings.TrimPrefix(strings.TrimPrefix(rest[end+len(delim)+1:], "\n"), "\r\n"))
	return fm, body
}

func sanitizeSlug(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, r := range slug {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			continue
		}
		return ""
	}
	return slug
}
