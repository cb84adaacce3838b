package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/keisuke-yamauch1/group-feeder/pkg/config"
	"github.com/keisuke-yamauch1/group-feeder/pkg/feed"
	"github.com/keisuke-yamauch1/group-feeder/pkg/repository"
	"github.com/keisuke-yamauch1/group-feeder/pkg/scheduler"
	"github.com/keisuke-yamauch1/group-feeder/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

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

	color.NoColor = opts.NoColor
	setupLog(opts.Debug)

	lgr.Printf("[INFO] starting group-feeder version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, &opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}

	cancel()
	lgr.Printf("[INFO] shutdown complete")
}

// run loads configuration, wires the components and blocks until the context
// is canceled
func run(ctx context.Context, opts *Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			lgr.Printf("[WARN] failed to close database: %v", closeErr)
		}
	}()

	deduper := feed.NewDeduper(repos.Article)
	fetcher := feed.NewFetcher(feed.FetcherConfig{
		Resolver:  deduper,
		Feeds:     repos.Feed,
		Articles:  repos.Article,
		UserAgent: cfg.Fetch.UserAgent,
	})

	sched := scheduler.NewScheduler(repos.Feed, fetcher, scheduler.Config{
		RefreshInterval: cfg.GetRefreshInterval(),
		WaveSize:        cfg.Schedule.WaveSize,
		FeedTimeout:     cfg.Schedule.FeedTimeout,
	})

	srv := server.New(cfg, server.NewRepositoryAdapter(repos), sched, fetcher, revision, opts.Debug)

	var g errgroup.Group
	g.Go(func() error {
		return srv.Run(ctx)
	})
	if cfg.Schedule.Poll {
		g.Go(func() error {
			sched.Start(ctx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("service failed: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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
