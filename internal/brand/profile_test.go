package brand

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinProfiles(t *testing.T) {
	reg := Builtin()
	for _, id := range []string{"bettergov", "altgovph", "kenchlightyear"} {
		if _, err := reg.Get(id); err != nil {
			t.Fatalf("missing builtin profile %s: %v", id, err)
		}
	}
	if _, err := reg.Get("nosuch"); err == nil {
		t.Fatalf("expected error for unknown profile")
	}
}

func TestContextValues(t *testing.T) {
	reg := Builtin()
	p, err := reg.Get("altgovph")
	if err != nil {
		t.Fatal(err)
	}
	rt, ok := p.Route("/budget")
	if !ok {
		t.Fatalf("altgovph profile is missing /budget")
	}
	ctx := p.Context(rt, Env{})
	want := map[string]string{
		"title":          "Budget Analysis - AltGovPH",
		"company_name":   "AltGovPH",
		"platform":       "AltGovPH",
		"SITE_NAME":      "AltGovPH",
		"SITE_URL":       "https://altgovph.site",
		"og_title":       "Budget Analysis - AltGovPH",
		"og_description": "Government Data Analysis Platform for Budget and Flood Control Projects",
		"og_url":         "https://altgovph.site/",
		"og_image":       "/static/images/gov_logo.png",
	}
	for k, v := range want {
		if ctx[k] != v {
			t.Errorf("ctx[%q] = %q, want %q", k, ctx[k], v)
		}
	}
}

func TestContextEnvOverridesSiteURL(t *testing.T) {
	reg := Builtin()
	p, _ := reg.Get("bettergov")
	rt, _ := p.Route("/budget")
	ctx := p.Context(rt, Env{SiteURL: "https://staging.bettergov.ph", GoogleClientID: "gid", FacebookAppID: "fid"})
	if ctx["SITE_URL"] != "https://staging.bettergov.ph" {
		t.Fatalf("SITE_URL not overridden: %q", ctx["SITE_URL"])
	}
	if ctx["GOOGLE_CLIENT_ID"] != "gid" || ctx["FACEBOOK_APP_ID"] != "fid" {
		t.Fatalf("client ids not propagated: %+v", ctx)
	}
}

func TestContextIsFreshPerCall(t *testing.T) {
	reg := Builtin()
	p, _ := reg.Get("altgovph")
	rt, _ := p.Route("/flood")
	a := p.Context(rt, Env{})
	a["title"] = "mutated"
	b := p.Context(rt, Env{})
	if b["title"] != "Flood Control Projects - AltGovPH" {
		t.Fatalf("context shared between calls: %q", b["title"])
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.org")
	t.Setenv("GOOGLE_CLIENT_ID", "g")
	t.Setenv("FACEBOOK_APP_ID", "f")
	env := LoadEnv()
	if env.SiteURL != "https://example.org" || env.GoogleClientID != "g" || env.FacebookAppID != "f" {
		t.Fatalf("unexpected env: %+v", env)
	}
}

func TestLoadFileOverlaysProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brands.yml")
	doc := `profiles:
  - id: altgovph
    site_name: AltGovPH Staging
    site_url: https://staging.altgovph.site
    company_name: AltGovPH
    platform: AltGovPH
    routes:
      - path: /alt
        template: altgovph_home.html
        title: AltGovPH Staging
  - id: newbrand
    site_name: New Brand
    site_url: https://new.example.org
    company_name: New Brand
    platform: New Brand
    routes:
      - path: /
        template: visualizations_home.html
        title: New Brand
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	reg := Builtin()
	if err := reg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	p, err := reg.Get("altgovph")
	if err != nil {
		t.Fatal(err)
	}
	if p.SiteName != "AltGovPH Staging" {
		t.Fatalf("overlay did not replace profile: %q", p.SiteName)
	}
	if _, err := reg.Get("newbrand"); err != nil {
		t.Fatalf("new brand not registered: %v", err)
	}
}

func TestNavActiveState(t *testing.T) {
	reg := Builtin()
	p, _ := reg.Get("bettergov")
	items := p.Nav("/budget")
	var active int
	for _, it := range items {
		if it.Active {
			active++
			if it.Href != "/budget" {
				t.Fatalf("wrong active item: %+v", it)
			}
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active item, got %d", active)
	}
}
