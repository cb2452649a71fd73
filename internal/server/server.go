// Package server assembles the HTTP surface for one brand profile: the
// profile's page routes, static assets, liveness and metrics endpoints.
package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/altgovph/govviz-web/internal/brand"
	"github.com/altgovph/govviz-web/internal/content"
	"github.com/altgovph/govviz-web/internal/metrics"
	"github.com/altgovph/govviz-web/internal/middleware"
	"github.com/altgovph/govviz-web/internal/render"
	"github.com/altgovph/govviz-web/internal/routing"
)

// Options configures a Server.
type Options struct {
	Profile    brand.Profile
	Registry   *render.Registry
	StaticDir  string
	ContentDir string
}

// Server renders the landing pages of a single brand profile.
type Server struct {
	profile    brand.Profile
	rules      routing.Rules
	reg        *render.Registry
	staticDir  string
	contentDir string
}

// New builds a Server for the given profile.
func New(opts Options) *Server {
	return &Server{
		profile:    opts.Profile,
		rules:      opts.Profile.Rules(),
		reg:        opts.Registry,
		staticDir:  opts.StaticDir,
		contentDir: opts.ContentDir,
	}
}

// Handler returns the assembled router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", middleware.Static("/static/", s.staticDir))

	for _, rt := range s.profile.Routes {
		r.Get(rt.Path, s.page(rt))
	}
	return r
}

// Check verifies every route template (and mobile variant) of the profile
// resolves in the registry. Used by the CLI before deploys.
func (s *Server) Check() error {
	var missing []string
	for _, rt := range s.profile.Routes {
		if !s.reg.Lookup(rt.Template) {
			missing = append(missing, rt.Template)
		}
		if rt.Mobile && !s.reg.Lookup("mobile/"+rt.Template) {
			missing = append(missing, "mobile/"+rt.Template)
		}
	}
	if len(missing) > 0 {
		return errors.New("server: missing templates: " + strings.Join(missing, ", "))
	}
	return nil
}

// page builds the handler for one route: classify the request, then either
// issue the redirect or render the selected template with a fresh context.
func (s *Server) page(rt brand.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env := brand.LoadEnv()
		ctx := s.profile.Context(rt, env)

		decision := s.rules.Classify(routing.FromHTTP(r), routing.Page{
			Template:  rt.Template,
			HasMobile: rt.Mobile,
			Context:   ctx,
		})

		if rd := decision.Redirect; rd != nil {
			metrics.LegacyRedirects.WithLabelValues(rt.Path).Inc()
			logrus.WithFields(logrus.Fields{
				"host":     r.Host,
				"path":     rt.Path,
				"location": rd.Location,
			}).Info("redirecting legacy production host to canonical domain")
			http.Redirect(w, r, rd.Location, rd.Status)
			return
		}

		data := make(map[string]any, len(decision.Render.Context)+2)
		for k, v := range decision.Render.Context {
			data[k] = v
		}
		data["nav"] = s.profile.Nav(rt.Path)
		if rt.ContentSlug != "" {
			page, err := content.Load(s.contentDir, rt.ContentSlug)
			switch {
			case err == nil:
				data["content"] = page
			case errors.Is(err, content.ErrNotFound):
				// informational body is optional
			default:
				logrus.WithError(err).WithField("slug", rt.ContentSlug).Warn("content load failed")
			}
		}

		out, err := s.reg.Render(decision.Render.Template, data)
		if err != nil {
			metrics.RenderErrors.WithLabelValues(rt.Path).Inc()
			logrus.WithError(err).WithField("template", decision.Render.Template).Error("render failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		metrics.PagesRendered.WithLabelValues(rt.Path).Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(out)
	}
}
