// Command guidance loads a harness fixture and either prints the resulting
// maneuver list once, or serves it over HTTP for interactive exploration.
// It exists to exercise the guidance core end to end the way a real
// routing server would call it (spec.md §6); the actual map ingestion and
// shortest-path search it depends on are the excluded collaborators this
// module never implements.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/valyala/fasthttp"
	"gopkg.in/yaml.v3"

	"github.com/jacostam/guidance-core/guidance"
	"github.com/jacostam/guidance-core/guidancecfg"
	"github.com/jacostam/guidance-core/harness"
	"github.com/jacostam/guidance-core/wire"
)

// fixtureFile is the on-disk shape a -fixture file must have: an ASCII
// grid, a way table, optional restrictions, and the waypoint to route
// between. It is only consumed here, by the CLI; the guidance core itself
// never parses this format.
type fixtureFile struct {
	Grid         string               `yaml:"grid"`
	Ways         []harness.Way        `yaml:"ways"`
	Restrictions []harness.Restriction `yaml:"restrictions"`
	From         string               `yaml:"from"`
	To           string               `yaml:"to"`
}

func main() {
	fixturePath := flag.String("fixture", "", "path to a harness fixture YAML file")
	configPath := flag.String("config", "", "path to a guidance config YAML file (optional)")
	addr := flag.String("serve", "", "if set, serve the fixture's route over HTTP at this address instead of printing once")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *fixturePath == "" {
		logger.Error("missing required -fixture flag")
		os.Exit(2)
	}

	cfg := guidancecfg.DefaultConfig()
	if *configPath != "" {
		loaded, err := guidancecfg.Load(*configPath)
		if err != nil {
			logger.Error("failed to load guidance config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	fx, err := loadFixture(*fixturePath)
	if err != nil {
		logger.Error("failed to load fixture", "error", err)
		os.Exit(1)
	}

	g, err := harness.Load(fx.Grid, fx.Ways, fx.Restrictions)
	if err != nil {
		logger.Error("failed to build fixture graph", "error", err)
		os.Exit(1)
	}

	route := func() ([]byte, error) {
		path, err := g.Route([]rune(fx.From)[0], []rune(fx.To)[0])
		if err != nil {
			return nil, fmt.Errorf("compute fixture path: %w", err)
		}
		r, err := guidance.Build(g, cfg, path)
		if err != nil {
			return nil, fmt.Errorf("build guidance: %w", err)
		}
		return wire.Marshal(r)
	}

	if *addr == "" {
		out, err := route()
		if err != nil {
			logger.Error("failed to compute route", "error", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		os.Stdout.Write([]byte("\n"))
		return
	}

	handler := func(ctx *fasthttp.RequestCtx) {
		out, err := route()
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
			ctx.SetBodyString(err.Error())
			logger.Error("request failed", "error", err)
			return
		}
		ctx.SetContentType("application/json")
		ctx.SetBody(out)
	}

	logger.Info("serving guidance fixture", "addr", *addr)
	if err := fasthttp.ListenAndServe(*addr, handler); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixtureFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %q: %w", path, err)
	}
	var fx fixtureFile
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("parse fixture %q: %w", path, err)
	}
	return &fx, nil
}
