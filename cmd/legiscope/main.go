package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/legiscope/pkg/config"
	"github.com/umputun/legiscope/pkg/content"
	"github.com/umputun/legiscope/pkg/repository"
	"github.com/umputun/legiscope/pkg/scheduler"
	"github.com/umputun/legiscope/pkg/source"
	"github.com/umputun/legiscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if empty"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	// .env is optional, real environment wins over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

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

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)
	log.Printf("[INFO] starting legiscope version %s", revision)

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

// run wires all components and blocks until ctx is canceled or the server fails
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	sc := cfg.GetSourceConfig()
	clientParams := source.Params{
		UserAgent:  sc.UserAgent,
		Timeout:    sc.Timeout,
		Retries:    sc.Retries,
		RetryDelay: sc.RetryDelay,
		TTL:        cfg.CacheTTL(),
	}
	srvParams := server.Params{Summarizer: content.NewDigestExtractor(), Version: revision, Debug: opts.Debug}

	var repos *repository.Repositories
	if cfg.Cache.Enabled {
		var err error
		repos, err = repository.NewRepositories(ctx, repository.Config{
			DSN:             cfg.Cache.DSN,
			MaxOpenConns:    cfg.Cache.MaxOpenConns,
			MaxIdleConns:    cfg.Cache.MaxIdleConns,
			ConnMaxLifetime: cfg.Cache.ConnLifetime,
		})
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		defer func() {
			if err := repos.Close(); err != nil {
				log.Printf("[WARN] failed to close cache: %v", err)
			}
		}()
		clientParams.Cache = repos.Document
		srvParams.CacheStats = repos.Document
		log.Printf("[INFO] document cache enabled, %s", cfg.Cache.DSN)
	}
	client := source.New(clientParams)

	if cfg.Warmer.Enabled && repos != nil {
		warmer := scheduler.NewScheduler(scheduler.Params{
			Fetcher:    client,
			Purger:     repos.Document,
			URLs:       source.NewURLs(sc.BaseURL, sc.WebServicesURL, sc.SessionYear),
			Feeds:      cfg.Warmer.Feeds,
			Members:    cfg.Warmer.Members,
			Interval:   cfg.Warmer.Interval,
			MaxWorkers: cfg.Warmer.MaxWorkers,
			Retention:  cfg.Cache.Retention,
		})
		warmer.Start(ctx)
		defer warmer.Stop()
	}

	srv := server.New(cfg, client, srvParams)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
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

