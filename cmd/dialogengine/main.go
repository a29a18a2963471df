// Command dialogengine wires the turn-evaluation engine to a
// fastglue/fasthttp HTTP server with a single POST /navigate route,
// serving the built-in demo tree against a Redis session store.
package main

import (
	"flag"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"github.com/zerodha/fastglue"
	"github.com/zerodha/logf"

	"github.com/shridarpatil/dialogengine/internal/config"
	"github.com/shridarpatil/dialogengine/internal/engine"
	"github.com/shridarpatil/dialogengine/internal/handlers"
	"github.com/shridarpatil/dialogengine/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log := logf.New(logf.Opts{EnableColor: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	root := buildDemoTree(cfg)
	if err := root.Validate(); err != nil {
		log.Error("navigation tree is malformed", "error", err)
		os.Exit(1)
	}

	controller := &engine.Controller{
		Root:  root,
		Store: store.NewRedisStore(redisClient, log),
		Symbols: engine.Symbols{
			Back: cfg.Navigation.BackSymbol,
			Home: cfg.Navigation.HomeSymbol,
		},
		Log:                log,
		SessionTTLSeconds:  cfg.Session.TTLSeconds,
		TranslationEnabled: cfg.Translation.Enabled,
	}

	app := &handlers.App{Controller: controller, Log: log}

	g := fastglue.NewGlue()
	g.POST("/navigate", app.Navigate)

	s := &fasthttp.Server{
		Name: "dialogengine",
	}
	log.Info("starting dialogengine", "addr", *addr)
	if err := g.ListenAndServe(*addr, "", s); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
