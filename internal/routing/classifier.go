// Package routing decides, per request, whether to short-circuit with a
// domain-migration redirect or which template variant to render. It is a pure
// function of the request: no I/O, no shared state, safe under any
// request-level parallelism.
package routing

import (
	"net/http"
	"strings"
)

// Request is the slice of an incoming HTTP request the classifier looks at.
// A missing or unparsable Host leaves every host-based predicate false.
type Request struct {
	Host     string
	Path     string
	RawQuery string
}

// Page describes the route being served: its template base name, whether a
// mobile/ template variant exists for it, and the brand metadata handed to
// the renderer.
type Page struct {
	Template  string
	HasMobile bool
	Context   map[string]string
}

// Redirect short-circuits the request with a Location header.
type Redirect struct {
	Location string
	Status   int
}

// Render resolves to a template execution with a fully built context.
type Render struct {
	Template string
	Context  map[string]string
}

// Decision is the outcome of classification. Exactly one of Redirect or
// Render is set; Redirect wins when both branches would apply.
type Decision struct {
	Redirect *Redirect
	Render   *Render
}

// Rules carries the host predicates for one brand profile.
type Rules struct {
	// MobileHosts are substring markers identifying the mobile domain,
	// e.g. "m.kenchlightyear.com".
	MobileHosts []string
	// LegacyHosts are exact hostnames being phased out, with and without
	// the www. prefix.
	LegacyHosts []string
	// CanonicalBase is the scheme+host legacy routes forward to,
	// e.g. "https://altgovph.site".
	CanonicalBase string
	// LegacyPaths is the fixed allow-list of paths subject to the
	// production-domain block. Paths outside it are never redirected.
	LegacyPaths []string
}

// FromHTTP extracts the classifier's view of an *http.Request.
func FromHTTP(r *http.Request) Request {
	return Request{
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
	}
}

// Classify produces the routing decision for req against page. The order of
// checks mirrors the handlers this consolidates: mobile-domain check first,
// then the production-domain block, then mobile template selection.
func (ru Rules) Classify(req Request, page Page) Decision {
	if rd := ru.mobileRedirect(req); rd != nil {
		return Decision{Redirect: rd}
	}
	if rd := ru.legacyRedirect(req); rd != nil {
		return Decision{Redirect: rd}
	}

	tpl := page.Template
	// Template selection re-inspects the host on its own rather than reusing
	// the mobile-domain check above. The two are decoupled upstream; keep it
	// that way even though they key on the same substrings.
	if page.HasMobile && ru.UseMobileTemplate(req.Host) {
		tpl = "mobile/" + tpl
	}
	return Decision{Render: &Render{Template: tpl, Context: page.Context}}
}

// UseMobileTemplate reports whether host carries one of the mobile-subdomain
// markers. An empty host never matches.
func (ru Rules) UseMobileTemplate(host string) bool {
	if host == "" {
		return false
	}
	for _, m := range ru.MobileHosts {
		if m != "" && strings.Contains(host, m) {
			return true
		}
	}
	return false
}

// mobileRedirect is the mobile-domain check. Requests already on the mobile
// domain fall through to normal rendering, and so does everything else: the
// branch never issues a redirect. It is retained because template selection
// downstream depends on the same host markers staying observable.
func (ru Rules) mobileRedirect(req Request) *Redirect {
	if ru.UseMobileTemplate(req.Host) {
		return nil // already on the mobile domain
	}
	return nil
}

// legacyRedirect is the production-domain block: an exact match on a legacy
// hostname combined with an allow-listed path forwards to the canonical
// domain, same path, query string preserved verbatim. All other paths on the
// legacy host are left alone.
func (ru Rules) legacyRedirect(req Request) *Redirect {
	if ru.CanonicalBase == "" || req.Host == "" {
		return nil
	}
	legacy := false
	for _, h := range ru.LegacyHosts {
		if req.Host == h {
			legacy = true
			break
		}
	}
	if !legacy {
		return nil
	}
	allowed := false
	for _, p := range ru.LegacyPaths {
		if req.Path == p {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil
	}

	loc := ru.CanonicalBase + req.Path
	if req.RawQuery != "" {
		loc += "?" + req.RawQuery
	}
	return &Redirect{Location: loc, Status: http.StatusPermanentRedirect}
}
