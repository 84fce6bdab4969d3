// Package config provides the configuration loader for warmboot.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/warmboot/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file and WARMBOOT_* variables.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the configuration at path, falling back to the defaults when the file is missing.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.DefaultConfigPath
	}

	wf, err := l.readFile(path)
	if err != nil {
		return nil, err
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, errors.Join(domain.ErrConfigEnvFailed, zerr.Wrap(err, "parse env"))
	}
	overrides.apply(wf)

	return resolve(wf)
}

func (l *Loader) readFile(path string) (*Warmfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			if l.Logger != nil {
				l.Logger.Debug("config file " + path + " not found, using defaults")
			}
			return &Warmfile{}, nil
		}
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "read config"), "path", path))
	}

	var wf Warmfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&wf); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "decode yaml"), "path", path))
	}

	return &wf, nil
}

func resolve(wf *Warmfile) (*domain.Config, error) {
	stateDir := strings.TrimSpace(wf.StateDir)
	if wf.StateDir == "" {
		stateDir = domain.DefaultStateDir
	}
	if stateDir == "" {
		return nil, domain.ErrMissingStateDir
	}
	stateDir = filepath.Clean(stateDir)

	enc, err := domain.ParseEncoding(wf.Encoding)
	if err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, err, zerr.With(zerr.New("invalid encoding"), "encoding", wf.Encoding))
	}

	exporter := strings.ToLower(strings.TrimSpace(wf.Telemetry.Exporter))
	switch exporter {
	case "":
		exporter = domain.ExporterNone
	case domain.ExporterNone, domain.ExporterStdout:
	default:
		detail := zerr.With(zerr.New("invalid exporter"), "exporter", wf.Telemetry.Exporter)
		return nil, errors.Join(domain.ErrConfigParseFailed, domain.ErrUnknownExporter, detail)
	}

	cfg := &domain.Config{
		StateDir:       stateDir,
		ArtifactPath:   domain.DefaultArtifactPath(stateDir),
		MarkerPath:     domain.DefaultMarkerPath(stateDir),
		LogFile:        orDefault(wf.LogFile, domain.DefaultLogFile),
		RuntimeVersion: orDefault(strings.TrimSpace(wf.RuntimeVersion), runtime.Version()),
		Encoding:       enc,
		InstanceIDFile: orDefault(wf.InstanceIDFile, domain.DefaultInstanceIDFile),
		Datasource:     wf.Datasource,
		Values:         maps.Clone(wf.Config),
		LogJSON:        wf.Log.JSON,
		LogLevel:       domain.LogLevelInfo,
		Exporter:       exporter,
	}

	if wf.Artifact != "" {
		cfg.ArtifactPath = domain.ResolvePath(stateDir, wf.Artifact)
	}
	if wf.Marker != "" {
		cfg.MarkerPath = domain.ResolvePath(stateDir, wf.Marker)
	}
	if cfg.Values == nil {
		cfg.Values = make(map[string]string)
	}
	if wf.Log.Verbose {
		cfg.LogLevel = domain.LogLevelDebug
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
