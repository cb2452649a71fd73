// Binary govviz serves the government-data visualization landing pages for
// one brand profile selected at startup.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/altgovph/govviz-web/internal/brand"
	"github.com/altgovph/govviz-web/internal/config"
	"github.com/altgovph/govviz-web/internal/render"
	"github.com/altgovph/govviz-web/internal/server"
)

func main() {
	app := &cli.App{
		Name:  "govviz",
		Usage: "Co-branded government data visualization web server",
		Commands: []*cli.Command{
			serveCommand,
			checkCommand,
			brandsCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

var commonFlags = []cli.Flag{
	&cli.StringFlag{Name: "config", Value: "govviz.yml", Usage: "server config file"},
	&cli.StringFlag{Name: "brand", Usage: "brand profile id (overrides config)"},
	&cli.StringFlag{Name: "templates", Usage: "templates directory (overrides config)"},
}

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Run the web server",
	Flags: append([]cli.Flag{
		&cli.StringFlag{Name: "addr", Usage: "listen address (overrides config and PORT)"},
		&cli.StringFlag{Name: "static", Usage: "static assets directory (overrides config)"},
		&cli.StringFlag{Name: "content", Usage: "markdown content directory (overrides config)"},
		&cli.BoolFlag{Name: "dev", Usage: "reparse templates per request and watch for edits"},
	}, commonFlags...),
	Action: runServe,
}

var checkCommand = &cli.Command{
	Name:  "check",
	Usage: "Verify every route of the selected brand resolves to a template",
	Flags: commonFlags,
	Action: func(c *cli.Context) error {
		cfg, profile, err := loadProfile(c)
		if err != nil {
			return err
		}
		reg, err := render.New(render.Options{Dir: cfg.TemplatesDir})
		if err != nil {
			return err
		}
		srv := server.New(server.Options{Profile: profile, Registry: reg, StaticDir: cfg.StaticDir, ContentDir: cfg.ContentDir})
		if err := srv.Check(); err != nil {
			return err
		}
		fmt.Printf("ok: %d routes, templates resolve for brand %s\n", len(profile.Routes), profile.ID)
		return nil
	},
}

var brandsCommand = &cli.Command{
	Name:  "brands",
	Usage: "List available brand profiles",
	Flags: commonFlags,
	Action: func(c *cli.Context) error {
		_, registry, err := loadRegistry(c)
		if err != nil {
			return err
		}
		for _, id := range registry.IDs() {
			p, _ := registry.Get(id)
			fmt.Printf("%-16s %s (%s), %d routes\n", id, p.SiteName, p.SiteURL, len(p.Routes))
		}
		return nil
	},
}

func runServe(c *cli.Context) error {
	cfg, profile, err := loadProfile(c)
	if err != nil {
		return err
	}
	if v := c.String("addr"); v != "" {
		cfg.Addr = v
	} else if port := listenPort(); port != "" {
		cfg.Addr = ":" + port
	}
	if v := c.String("static"); v != "" {
		cfg.StaticDir = v
	}
	if v := c.String("content"); v != "" {
		cfg.ContentDir = v
	}
	if c.Bool("dev") {
		cfg.Dev = true
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Dev {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	reg, err := render.New(render.Options{
		Dir:    cfg.TemplatesDir,
		Dev:    cfg.Dev,
		Minify: cfg.Minify && !cfg.Dev,
	})
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	srv := server.New(server.Options{
		Profile:    profile,
		Registry:   reg,
		StaticDir:  cfg.StaticDir,
		ContentDir: cfg.ContentDir,
	})
	if err := srv.Check(); err != nil {
		return err
	}

	if cfg.Dev {
		stop := make(chan struct{})
		defer close(stop)
		go func() {
			if err := reg.Watch(stop); err != nil {
				logrus.WithError(err).Warn("template watcher stopped")
			}
		}()
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logrus.WithFields(logrus.Fields{
		"addr":  cfg.Addr,
		"brand": profile.ID,
		"dev":   cfg.Dev,
	}).Info("govviz listening")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// listenPort resolves the listen port from the environment: GOVVIZ_PORT
// first, then the platform-provided PORT.
func listenPort() string {
	if p := os.Getenv("GOVVIZ_PORT"); p != "" {
		return p
	}
	return os.Getenv("PORT")
}

func loadRegistry(c *cli.Context) (config.Config, brand.Registry, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cfg, nil, err
	}
	if v := c.String("templates"); v != "" {
		cfg.TemplatesDir = v
	}
	registry := brand.Builtin()
	if cfg.BrandsFile != "" {
		if err := registry.LoadFile(cfg.BrandsFile); err != nil {
			return cfg, nil, err
		}
	}
	return cfg, registry, nil
}

func loadProfile(c *cli.Context) (config.Config, brand.Profile, error) {
	cfg, registry, err := loadRegistry(c)
	if err != nil {
		return cfg, brand.Profile{}, err
	}
	id := cfg.Brand
	if v := c.String("brand"); v != "" {
		id = v
	}
	profile, err := registry.Get(id)
	if err != nil {
		return cfg, brand.Profile{}, err
	}
	return cfg, profile, nil
}
