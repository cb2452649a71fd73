// Package brand holds the data-driven brand configuration table: one profile
// per co-branded site skin, each carrying display metadata, a route table and
// the host rules for redirects and mobile template selection.
package brand

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/altgovph/govviz-web/internal/routing"
)

// Route is one page served by a brand: URL path, template base name and the
// per-page metadata strings inserted into the render context.
type Route struct {
	Path          string `yaml:"path"`
	Template      string `yaml:"template"`
	Title         string `yaml:"title"`
	OGTitle       string `yaml:"og_title"`
	OGDescription string `yaml:"og_description"`
	OGURL         string `yaml:"og_url"`
	// Mobile marks routes that have a mobile/ template variant.
	Mobile bool `yaml:"mobile"`
	// ContentSlug names an optional markdown document rendered into the page
	// body (informational pages only).
	ContentSlug string `yaml:"content_slug"`
}

// Profile is one brand skin of the shared visualization platform.
type Profile struct {
	ID          string  `yaml:"id"`
	SiteName    string  `yaml:"site_name"`
	SiteURL     string  `yaml:"site_url"`
	CompanyName string  `yaml:"company_name"`
	Platform    string  `yaml:"platform"`
	OGImage     string  `yaml:"og_image"`
	Routes      []Route `yaml:"routes"`

	MobileHosts   []string `yaml:"mobile_hosts"`
	LegacyHosts   []string `yaml:"legacy_hosts"`
	CanonicalBase string   `yaml:"canonical_base"`
	LegacyPaths   []string `yaml:"legacy_paths"`
}

// Env carries the environment-sourced identity overrides added to every
// context. SiteURL, when set, overrides the profile's SITE_URL.
type Env struct {
	SiteURL        string
	GoogleClientID string
	FacebookAppID  string
}

// LoadEnv reads the identity overrides from the process environment.
func LoadEnv() Env {
	return Env{
		SiteURL:        os.Getenv("SITE_URL"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		FacebookAppID:  os.Getenv("FACEBOOK_APP_ID"),
	}
}

// Rules returns the host predicates for this profile in classifier form.
func (p Profile) Rules() routing.Rules {
	return routing.Rules{
		MobileHosts:   p.MobileHosts,
		LegacyHosts:   p.LegacyHosts,
		CanonicalBase: p.CanonicalBase,
		LegacyPaths:   p.LegacyPaths,
	}
}

// Route looks up a route by path.
func (p Profile) Route(path string) (Route, bool) {
	for _, rt := range p.Routes {
		if rt.Path == path {
			return rt, true
		}
	}
	return Route{}, false
}

// Context builds the render context for one route. Each call returns a fresh
// map; nothing is shared between requests.
func (p Profile) Context(rt Route, env Env) map[string]string {
	siteURL := p.SiteURL
	if env.SiteURL != "" {
		siteURL = env.SiteURL
	}
	ogURL := rt.OGURL
	if ogURL == "" {
		ogURL = siteURL + "/"
	}
	ctx := map[string]string{
		"title":            rt.Title,
		"company_name":     p.CompanyName,
		"platform":         p.Platform,
		"SITE_NAME":        p.SiteName,
		"SITE_URL":         siteURL,
		"og_title":         rt.OGTitle,
		"og_description":   rt.OGDescription,
		"og_url":           ogURL,
		"og_image":         p.OGImage,
		"GOOGLE_CLIENT_ID": env.GoogleClientID,
		"FACEBOOK_APP_ID":  env.FacebookAppID,
	}
	if ctx["og_title"] == "" {
		ctx["og_title"] = rt.Title
	}
	return ctx
}

// Registry is the profile table keyed by brand id.
type Registry map[string]Profile

// Get returns the profile for id.
func (r Registry) Get(id string) (Profile, error) {
	p, ok := r[id]
	if !ok {
		return Profile{}, fmt.Errorf("brand: unknown profile %q", id)
	}
	return p, nil
}

// IDs lists the registered brand ids in stable order.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadFile overlays profiles from a YAML file onto the registry. Profiles are
// replaced whole by id; the file may also introduce new brands.
func (r Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("brand: read %s: %w", path, err)
	}
	var doc struct {
		Profiles []Profile `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("brand: parse %s: %w", path, err)
	}
	for _, p := range doc.Profiles {
		if p.ID == "" {
			return fmt.Errorf("brand: profile without id in %s", path)
		}
		r[p.ID] = p
	}
	return nil
}
