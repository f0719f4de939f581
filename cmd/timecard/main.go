package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/timecard/internal/cli"
	"github.com/alexanderramin/timecard/internal/clipboard"
	"github.com/alexanderramin/timecard/internal/clock"
	"github.com/alexanderramin/timecard/internal/config"
	"github.com/alexanderramin/timecard/internal/db"
	"github.com/alexanderramin/timecard/internal/repository"
	"github.com/alexanderramin/timecard/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	mode, err := clipboard.ParseMode(cfg.ClipboardMode)
	if err != nil {
		return fmt.Errorf("TIMECARD_CLIPBOARD: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	days := repository.NewSQLiteDayStateRepo(database, db.NewSQLiteUnitOfWork(database))

	var observer service.Observer = service.NoopObserver{}
	if cfg.LogEvents {
		observer = service.NewLogObserver(os.Stderr, cfg.LogLevel)
	}

	// OSC 52 sequences go to stderr so piped stdout stays clean.
	tracker := service.NewTracker(days, clock.System{}, clipboard.New(mode, os.Stderr), service.WithObserver(observer))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tracker.Load(ctx); err != nil {
		return fmt.Errorf("loading today: %w", err)
	}

	app := &cli.App{
		TimeCard: tracker,
		Config:   cfg,
	}

	// Detect interactive terminal for the widget and the format picker.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
