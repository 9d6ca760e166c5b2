package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/expravatar/pkg/avatar"
	"github.com/umputun/expravatar/pkg/config"
	"github.com/umputun/expravatar/pkg/host"
	"github.com/umputun/expravatar/pkg/repository"
	"github.com/umputun/expravatar/pkg/settings"
	"github.com/umputun/expravatar/server"
)

// Opts with all CLI options
type Opts struct {
	Config   string `short:"c" long:"config" env:"CONFIG" description:"path to config file, built-in defaults if not set"`
	Listen   string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DB       string `long:"db" env:"DB" description:"database DSN, overrides config"`
	Classify string `long:"classify" description:"print expression picked for the given text and exit"`
	Verbose  bool   `short:"v" long:"verbose" description:"verbose mode"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

// stdout receives one-shot command results
var stdout io.Writer = os.Stdout

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug || opts.Verbose)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.Classify == "" {
		log.Printf("[INFO] starting expravatar version %s", revision)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	mgr := settings.NewManager(settings.Config{
		SettingStore:   repos.Setting,
		CatalogStore:   repos.Catalog,
		Defaults:       cfg.InitialSettings(),
		DefaultCatalog: cfg.InitialCatalog(),
		Debounce:       cfg.Settings.SaveDebounce,
	})
	if err := mgr.Load(ctx); err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	builder := avatar.NewBuilder(avatar.Resolver{Template: cfg.Images.Template, Ext: cfg.Images.Ext}, makeProber(cfg))
	proc := host.NewProcessor(host.Config{
		Settings:  mgr,
		Store:     repos.Expression,
		Source:    host.StoredExpressions{Store: repos.Expression},
		Presenter: builder,
	})

	if opts.Classify != "" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(proc.Classify(opts.Classify)); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		return nil
	}

	srv := server.New(cfg, mgr, proc, revision, opts.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(gctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		mgr.SaveWorker(gctx)
		return nil
	})
	return g.Wait()
}

// loadConfig reads the config file if given and applies command line overrides.
// config.Load checks the file against the embedded schema.
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}
	return cfg, nil
}

// makeProber picks how expression images are checked, nil if not configured
func makeProber(cfg *config.Config) avatar.Prober {
	switch {
	case cfg.Images.ProbeURL != "":
		log.Printf("[INFO] checking expression images at %s", cfg.Images.ProbeURL)
		return avatar.NewHTTPProber(cfg.Images.ProbeURL, cfg.Images.ProbeTimeout)
	case cfg.Images.ProbeDir != "":
		log.Printf("[INFO] checking expression images in %s", cfg.Images.ProbeDir)
		return avatar.DirProber{Root: cfg.Images.ProbeDir}
	default:
		return nil
	}
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
