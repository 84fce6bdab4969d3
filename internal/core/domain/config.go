package domain

import (
	"path/filepath"
	"strings"
)

// Config is the resolved runtime configuration for one invocation.
type Config struct {
	StateDir       string
	ArtifactPath   string
	MarkerPath     string
	LogFile        string
	RuntimeVersion string
	Encoding       Encoding
	InstanceIDFile string
	Datasource     string
	Values         map[string]string
	LogJSON        bool
	LogLevel       LogLevel
	Exporter       string
}

const (
	// ExporterNone disables span export.
	ExporterNone = "none"
	// ExporterStdout writes spans to stderr as JSON.
	ExporterStdout = "stdout"
)

// Layout returns the cache file locations described by the config.
func (c *Config) Layout() CacheLayout {
	return CacheLayout{
		ArtifactPath: c.ArtifactPath,
		MarkerPath:   c.MarkerPath,
	}
}

// WithStateDir moves the state directory to dir. Cache paths that lived under the
// old state directory move along; paths configured elsewhere are kept.
func (c *Config) WithStateDir(dir string) {
	if dir == "" {
		return
	}
	dir = filepath.Clean(dir)
	c.ArtifactPath = rebase(c.ArtifactPath, c.StateDir, dir)
	c.MarkerPath = rebase(c.MarkerPath, c.StateDir, dir)
	c.StateDir = dir
}

func rebase(path, from, to string) string {
	rel, err := filepath.Rel(from, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.Join(to, rel)
}
