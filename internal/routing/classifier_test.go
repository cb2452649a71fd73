package routing

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func testRules() Rules {
	return Rules{
		MobileHosts:   []string{"m.kenchlightyear.com", "mobile.kenchlightyear.com"},
		LegacyHosts:   []string{"kenchlightyear.com", "www.kenchlightyear.com"},
		CanonicalBase: "https://altgovph.site",
		LegacyPaths: []string{
			"/budget", "/flood", "/alt", "/dime",
			"/budget-flood-correlation", "/flood-dime-correlation",
		},
	}
}

func testPage() Page {
	return Page{
		Template:  "budget.html",
		HasMobile: true,
		Context:   map[string]string{"title": "Budget Analysis - AltGovPH"},
	}
}

func TestLegacyHostRedirects(t *testing.T) {
	ru := testRules()
	for _, host := range []string{"kenchlightyear.com", "www.kenchlightyear.com"} {
		d := ru.Classify(Request{Host: host, Path: "/budget"}, testPage())
		if d.Redirect == nil {
			t.Fatalf("host %s: expected redirect, got render", host)
		}
		if d.Render != nil {
			t.Fatalf("host %s: decision carries both redirect and render", host)
		}
		if d.Redirect.Status != http.StatusPermanentRedirect {
			t.Fatalf("host %s: expected 308, got %d", host, d.Redirect.Status)
		}
		if d.Redirect.Location != "https://altgovph.site/budget" {
			t.Fatalf("host %s: unexpected location %q", host, d.Redirect.Location)
		}
	}
}

func TestLegacyRedirectPreservesQuery(t *testing.T) {
	ru := testRules()
	d := ru.Classify(Request{Host: "kenchlightyear.com", Path: "/budget", RawQuery: "year=2024"}, testPage())
	if d.Redirect == nil {
		t.Fatalf("expected redirect")
	}
	if got, want := d.Redirect.Location, "https://altgovph.site/budget?year=2024"; got != want {
		t.Fatalf("location = %q, want %q", got, want)
	}
}

func TestLegacyRedirectNoBareQuestionMark(t *testing.T) {
	ru := testRules()
	d := ru.Classify(Request{Host: "kenchlightyear.com", Path: "/flood"}, Page{Template: "flood.html"})
	if d.Redirect == nil {
		t.Fatalf("expected redirect")
	}
	if got := d.Redirect.Location; got[len(got)-1] == '?' {
		t.Fatalf("location %q ends in a bare ?", got)
	}
}

func TestLegacyHostPathOutsideAllowListRenders(t *testing.T) {
	ru := testRules()
	d := ru.Classify(Request{Host: "kenchlightyear.com", Path: "/nep"}, Page{Template: "nep.html"})
	if d.Redirect != nil {
		t.Fatalf("path outside allow-list must not redirect, got %+v", d.Redirect)
	}
	if d.Render == nil || d.Render.Template != "nep.html" {
		t.Fatalf("expected render of nep.html, got %+v", d.Render)
	}
}

func TestNonLegacyHostNeverRedirects(t *testing.T) {
	ru := testRules()
	for _, host := range []string{"altgovph.site", "visualizations.bettergov.ph", "staging.kenchlightyear.com", "localhost:8888"} {
		for _, path := range ru.LegacyPaths {
			d := ru.Classify(Request{Host: host, Path: path}, Page{Template: "budget.html"})
			if d.Redirect != nil {
				t.Fatalf("host %s path %s: unexpected redirect %+v", host, path, d.Redirect)
			}
		}
	}
}

func TestMobileHostSelectsMobileTemplate(t *testing.T) {
	ru := testRules()
	for _, host := range []string{"m.kenchlightyear.com", "mobile.kenchlightyear.com", "m.kenchlightyear.com:443"} {
		d := ru.Classify(Request{Host: host, Path: "/budget"}, testPage())
		if d.Render == nil {
			t.Fatalf("host %s: expected render", host)
		}
		if d.Render.Template != "mobile/budget.html" {
			t.Fatalf("host %s: template = %q, want mobile/budget.html", host, d.Render.Template)
		}
	}
}

func TestMobileHostWithoutMobileVariantKeepsBaseTemplate(t *testing.T) {
	ru := testRules()
	d := ru.Classify(Request{Host: "m.kenchlightyear.com", Path: "/budget-flood-correlation"},
		Page{Template: "budget_flood_correlation.html"})
	if d.Render == nil || d.Render.Template != "budget_flood_correlation.html" {
		t.Fatalf("expected base template, got %+v", d.Render)
	}
}

func TestMobileDomainCheckIsANoOp(t *testing.T) {
	// The mobile-domain check never redirects, whether or not the host is on
	// the mobile domain; only template selection reacts to the markers.
	ru := testRules()
	for _, host := range []string{"m.kenchlightyear.com", "desktop.example.com", ""} {
		if rd := ru.mobileRedirect(Request{Host: host, Path: "/"}); rd != nil {
			t.Fatalf("host %q: mobile check produced a redirect: %+v", host, rd)
		}
	}
}

func TestAbsentHostFallsThroughToRender(t *testing.T) {
	ru := testRules()
	d := ru.Classify(Request{Host: "", Path: "/budget"}, testPage())
	if d.Redirect != nil {
		t.Fatalf("empty host must not redirect")
	}
	if d.Render.Template != "budget.html" {
		t.Fatalf("empty host must select the non-mobile template, got %q", d.Render.Template)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	ru := testRules()
	req := Request{Host: "kenchlightyear.com", Path: "/dime", RawQuery: "region=iii"}
	page := Page{Template: "dime.html", HasMobile: true}
	first := ru.Classify(req, page)
	second := ru.Classify(req, page)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("classification is not idempotent: %+v vs %+v", first, second)
	}
}

func TestEmptyRulesNeverRedirect(t *testing.T) {
	var ru Rules
	d := ru.Classify(Request{Host: "kenchlightyear.com", Path: "/budget"}, Page{Template: "budget.html"})
	if d.Redirect != nil {
		t.Fatalf("rules without a canonical base must not redirect")
	}
}

func TestFromHTTP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://kenchlightyear.com/dime?page=2", nil)
	req := FromHTTP(r)
	if req.Host != "kenchlightyear.com" || req.Path != "/dime" || req.RawQuery != "page=2" {
		t.Fatalf("unexpected request view: %+v", req)
	}
}
