// Package app implements the application layer for warmboot.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/warmboot/internal/adapters/telemetry"
	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/warmboot/internal/core/ports"
	"go.trai.ch/warmboot/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	marker       ports.VersionMarker
	store        ports.StateSerializer
	initializer  ports.Initializer
	logger       ports.Logger
	tracer       ports.Tracer
	traceOutput  io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	marker ports.VersionMarker,
	store ports.StateSerializer,
	initializer ports.Initializer,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		marker:       marker,
		store:        store,
		initializer:  initializer,
		logger:       log,
		tracer:       tracer,
		traceOutput:  os.Stderr,
	}
}

// WithTraceOutput sets where exported spans are written.
func (a *App) WithTraceOutput(w io.Writer) *App {
	a.traceOutput = w
	return a
}

// Options holds the settings shared by every command.
type Options struct {
	ConfigPath string
	StateDir   string
	Verbose    bool
	JSON       bool
}

// BootOptions configuration for the Boot method.
type BootOptions struct {
	Options
}

// BootResult summarizes one boot pass.
type BootResult struct {
	State   *domain.InstanceState
	Restore domain.RestoreReport
	Persist domain.PersistReport
}

// Boot restores the cached instance state, runs the initialization work on it
// and persists it for the next boot.
func (a *App) Boot(ctx context.Context, opts BootOptions) (*BootResult, error) {
	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return nil, err
	}

	closeLog := a.attachLogFile(cfg.LogFile)
	defer closeLog()

	shutdown, err := telemetry.Setup(cfg.Exporter, a.traceOutput)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to set up telemetry")
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			a.logger.Debug("telemetry shutdown: " + err.Error())
		}
	}()

	ctx, span := a.tracer.Start(ctx, "boot", ports.WithAttribute("state_dir", cfg.StateDir))
	defer span.End()

	ctl := lifecycle.New(a.marker, a.store, a.logger, a.tracer, lifecycle.Options{
		Layout:         cfg.Layout(),
		RuntimeVersion: cfg.RuntimeVersion,
		Encoding:       cfg.Encoding,
	})

	state, restored, err := ctl.Restore(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := a.initializer.Initialize(ctx, cfg, state); err != nil {
		err = errors.Join(domain.ErrInitializationFailed, err)
		span.RecordError(err)
		return nil, err
	}

	persisted, err := ctl.Persist(ctx, state)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("boot %d complete, cache %s", state.BootCount, restored.Outcome))

	return &BootResult{State: state, Restore: restored, Persist: persisted}, nil
}

// StatusOptions configuration for the Status method.
type StatusOptions struct {
	Options
}

// Status reports the cache files and the verdict the next boot would reach.
func (a *App) Status(_ context.Context, opts StatusOptions) (*domain.CacheStatus, error) {
	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return nil, err
	}

	status, err := lifecycle.Probe(a.marker, a.store, cfg.Layout(), cfg.RuntimeVersion)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to inspect cache")
	}
	return status, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Options
	// All also removes the version marker.
	All bool
}

// Clean purges the cached artifact and, with All, the version marker.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return err
	}

	var errs error

	remove := func(name, path string, fn func(string) error) {
		a.logger.Info(fmt.Sprintf("removing %s %s", name, path))
		if err := fn(path); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	remove("cache artifact", cfg.ArtifactPath, a.store.Remove)
	if opts.All {
		remove("version marker", cfg.MarkerPath, a.marker.Remove)
	}

	if errs != nil {
		return errors.Join(domain.ErrCleanFailed, errs)
	}
	return nil
}

func (a *App) loadConfig(opts Options) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	cfg.WithStateDir(opts.StateDir)
	if opts.Verbose {
		cfg.LogLevel = domain.LogLevelDebug
	}
	if opts.JSON {
		cfg.LogJSON = true
	}

	a.logger.SetLevel(cfg.LogLevel)
	a.logger.SetJSON(cfg.LogJSON)

	return cfg, nil
}

// attachLogFile adds the append-only log file as a sink. A log file that cannot
// be opened is reported but does not stop the boot.
func (a *App) attachLogFile(path string) func() {
	if path == "" {
		return func() {}
	}

	f, err := openLogFile(path)
	if err != nil {
		a.logger.Warn("Could not open log file " + path)
		a.logger.Debug(err.Error())
		return func() {}
	}

	a.logger.AddSink(f)
	return func() { _ = f.Close() }
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, errors.Join(domain.ErrLogFileOpenFailed, zerr.With(zerr.Wrap(err, "create log directory"), "path", path))
	}

	//nolint:gosec // Path comes from the resolved configuration
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return nil, errors.Join(domain.ErrLogFileOpenFailed, zerr.With(zerr.Wrap(err, "open log file"), "path", path))
	}
	return f, nil
}
