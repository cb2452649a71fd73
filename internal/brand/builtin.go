package brand

// Host constants for the domain migration: the legacy production host
// forwards allow-listed dashboard routes to the canonical AltGovPH domain.
const (
	altgovSiteURL    = "https://altgovph.site"
	bettergovSiteURL = "https://visualizations.bettergov.ph"
	kenchSiteURL     = "https://kenchlightyear.com"
)

var kenchMobileHosts = []string{"m.kenchlightyear.com", "mobile.kenchlightyear.com"}

var kenchLegacyHosts = []string{"kenchlightyear.com", "www.kenchlightyear.com"}

// legacyPaths is the fixed allow-list of routes subject to the
// production-domain block. Other paths on the legacy host stay put.
var legacyPaths = []string{
	"/budget",
	"/flood",
	"/alt",
	"/dime",
	"/budget-flood-correlation",
	"/flood-dime-correlation",
}

// Builtin returns the compiled-in profile table. The values mirror the three
// deployed skins of the platform; a config file may override any of them.
func Builtin() Registry {
	return Registry{
		"bettergov": {
			ID:          "bettergov",
			SiteName:    "BetterGovPH Data Visualizations",
			SiteURL:     bettergovSiteURL,
			CompanyName: "BetterGovPH",
			Platform:    "BetterGovPH",
			OGImage:     "/static/images/gov_logo.png",
			Routes: []Route{
				{Path: "/", Template: "visualizations_home.html", Title: "BetterGovPH Data Visualizations"},
				{Path: "/budget", Template: "budget.html", Title: "Budget Analysis - BetterGovPH"},
				{Path: "/flood", Template: "flood.html", Title: "Flood Control Projects - BetterGovPH"},
				{Path: "/dime", Template: "dime.html", Title: "DIME Infrastructure Projects - BetterGovPH"},
				{Path: "/nep", Template: "nep.html", Title: "NEP Analysis - BetterGovPH"},
				{Path: "/map", Template: "map.html", Title: "Interactive Map - BetterGovPH", ContentSlug: "map"},
				{Path: "/about", Template: "about.html", Title: "About - BetterGovPH", ContentSlug: "about"},
				{Path: "/budget-nep-correlation", Template: "budget_nep_correlation.html", Title: "Budget-NEP Correlation - BetterGovPH"},
				{Path: "/budget-flood-correlation", Template: "budget_flood_correlation.html", Title: "Budget-Flood Correlation - BetterGovPH"},
				{Path: "/flood-dime-correlation", Template: "flood_dime_correlation.html", Title: "Flood-DIME Correlation - BetterGovPH"},
			},
		},
		"altgovph": {
			ID:            "altgovph",
			SiteName:      "AltGovPH",
			SiteURL:       altgovSiteURL,
			CompanyName:   "AltGovPH",
			Platform:      "AltGovPH",
			OGImage:       "/static/images/gov_logo.png",
			MobileHosts:   kenchMobileHosts,
			LegacyHosts:   kenchLegacyHosts,
			CanonicalBase: altgovSiteURL,
			LegacyPaths:   legacyPaths,
			Routes: []Route{
				{
					Path: "/alt", Template: "altgovph_home.html", Mobile: true,
					Title:         "AltGovPH - Alternative Government Philippines",
					OGTitle:       "AltGovPH - Alternative Government Philippines",
					OGDescription: "Promoting Data Transparency and Open Government in the Philippines",
				},
				{
					Path: "/budget", Template: "budget.html", Mobile: true,
					Title:         "Budget Analysis - AltGovPH",
					OGTitle:       "Budget Analysis - AltGovPH",
					OGDescription: "Government Data Analysis Platform for Budget and Flood Control Projects",
				},
				{
					Path: "/flood", Template: "flood.html", Mobile: true,
					Title:         "Flood Control Projects - AltGovPH",
					OGTitle:       "Flood Control Projects - AltGovPH",
					OGDescription: "Government Data Analysis Platform for Flood Control Infrastructure Projects",
				},
				{
					Path: "/dime", Template: "dime.html", Mobile: true,
					Title:         "DIME Infrastructure Projects - AltGovPH",
					OGTitle:       "DIME Infrastructure Projects - AltGovPH",
					OGDescription: "Department of Infrastructure and Mega-Projects Execution - Infrastructure Projects Tracker",
				},
				{
					Path: "/budget-flood-correlation", Template: "budget_flood_correlation.html",
					Title: "Budget-Flood Correlation Analysis - AltGovPH",
					OGURL: altgovSiteURL + "/budget-flood-correlation",
				},
				{
					Path: "/flood-dime-correlation", Template: "flood_dime_correlation.html",
					Title: "Flood-DIME Correlation Analysis - AltGovPH",
					OGURL: altgovSiteURL + "/flood-dime-correlation",
				},
			},
		},
		"kenchlightyear": {
			ID:            "kenchlightyear",
			SiteName:      "KenchLightyear",
			SiteURL:       kenchSiteURL,
			CompanyName:   "KenchLightyear",
			Platform:      "KenchLightyear",
			OGImage:       "/static/images/gov_logo.png",
			MobileHosts:   kenchMobileHosts,
			LegacyHosts:   kenchLegacyHosts,
			CanonicalBase: altgovSiteURL,
			LegacyPaths:   legacyPaths,
			Routes: []Route{
				{Path: "/", Template: "kenchlightyear_home.html", Title: "KenchLightyear", Mobile: true},
				{Path: "/budget", Template: "budget.html", Title: "Budget Analysis - KenchLightyear", Mobile: true},
				{Path: "/flood", Template: "flood.html", Title: "Flood Control Projects - KenchLightyear", Mobile: true},
				{Path: "/dime", Template: "dime.html", Title: "DIME Infrastructure Projects - KenchLightyear", Mobile: true},
				{Path: "/nep", Template: "nep.html", Title: "NEP Analysis - KenchLightyear"},
				{Path: "/map", Template: "map.html", Title: "Interactive Map - KenchLightyear", ContentSlug: "map"},
				{Path: "/about", Template: "about.html", Title: "About - KenchLightyear", ContentSlug: "about"},
				{Path: "/budget-flood-correlation", Template: "budget_flood_correlation.html", Title: "Budget-Flood Correlation - KenchLightyear"},
				{Path: "/flood-dime-correlation", Template: "flood_dime_correlation.html", Title: "Flood-DIME Correlation - KenchLightyear"},
			},
		},
	}
}
