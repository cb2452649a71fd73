// Package metrics exposes the server's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PagesRendered counts successful template renders by route path.
	PagesRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "govviz_pages_rendered_total",
		Help: "Pages rendered, by route path.",
	}, []string{"path"})

	// LegacyRedirects counts production-domain redirects to the canonical site.
	LegacyRedirects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "govviz_legacy_redirects_total",
		Help: "Permanent redirects issued from the legacy production host.",
	}, []string{"path"})

	// RenderErrors counts template lookup/execution failures by route path.
	RenderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "govviz_render_errors_total",
		Help: "Template render failures, by route path.",
	}, []string{"path"})
)
