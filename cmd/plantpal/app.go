package main

import (
	"os"
	"time"

	"github.com/jacksmith/plantpal/internal/cli"
	"github.com/jacksmith/plantpal/internal/db"
	"github.com/jacksmith/plantpal/internal/logging"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/jacksmith/plantpal/internal/ops"
	"github.com/jacksmith/plantpal/internal/photo"
	"github.com/jacksmith/plantpal/internal/storage"
	"github.com/rs/zerolog"
)

// logFileName is where the TUI logs, inside the data directory.
const logFileName = "plantpal.log"

// app bundles everything a command needs: config, logger, the plant store
// and the loaded collection.
type app struct {
	storage *storage.Storage
	cfg     *storage.Config
	logger  zerolog.Logger
	store   ops.Store
	coll    *ops.Collection
	photos  ops.PhotoStore // nil unless photo_dir is configured
	today   time.Time

	closers []func()
}

type appOptions struct {
	// logFile sends logs to plantpal.log instead of stderr.
	logFile bool
	// quiet discards all logs.
	quiet bool
	// noLoad skips loading the collection.
	noLoad bool
}

// openApp opens the data directory named by --dir and loads the collection.
func openApp(opts appOptions) (*app, error) {
	s, err := storage.Open(flagDir)
	if err != nil {
		return nil, err
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	a := &app{storage: s, cfg: cfg}

	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	switch {
	case opts.quiet:
		a.logger = zerolog.Nop()
	case opts.logFile:
		logger, closeLog, err := logging.NewFile(level, s.Path(logFileName))
		if err != nil {
			return nil, err
		}
		a.logger = logger
		a.closers = append(a.closers, closeLog)
	default:
		a.logger = logging.New(level, os.Stderr)
	}

	color := cfg.Color
	if flagNoColor {
		color = "never"
	}
	cli.ApplyColorMode(color, os.Stdout)

	a.today, err = referenceDate()
	if err != nil {
		a.Close()
		return nil, err
	}

	if err := a.openStore(); err != nil {
		a.Close()
		return nil, err
	}

	if cfg.PhotoDir != "" {
		photos, err := photo.NewLocalStore(s.Path(cfg.PhotoDir), a.logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.photos = photos
	}

	a.coll = ops.NewCollection(a.store, a.logger)
	if !opts.noLoad {
		if err := a.coll.Load(); err != nil {
			a.Close()
			return nil, err
		}
	}
	return a, nil
}

func (a *app) openStore() error {
	switch a.cfg.Backend {
	case storage.BackendSQLite:
		st, err := db.Open(a.storage.Path(a.cfg.DBFile), a.logger)
		if err != nil {
			return err
		}
		a.store = st
		a.closers = append(a.closers, func() { _ = st.Close() })
	default:
		a.store = storage.NewFileStore(a.storage.Path(a.cfg.DataFile), a.logger)
	}
	return nil
}

// Close releases the database and log file, if open.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// resolve finds the plant a command argument refers to.
func (a *app) resolve(ref string) (model.Plant, error) {
	i, err := a.coll.Resolve(ref)
	if err != nil {
		return model.Plant{}, err
	}
	return a.coll.Get(i)
}

// referenceDate returns the --today override, or the current date.
func referenceDate() (time.Time, error) {
	if flagToday == "" {
		return model.Today(), nil
	}
	return cli.ParseDate(flagToday, time.Now())
}
