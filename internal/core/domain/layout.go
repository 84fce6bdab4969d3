package domain

import "path/filepath"

const (
	// DefaultStateDir is the default root directory for cached instance state.
	DefaultStateDir = "/var/lib/warmboot"

	// DefaultConfigPath is the default location of the configuration file.
	DefaultConfigPath = "/etc/warmboot/warmboot.yaml"

	// DefaultLogFile is the default append-only log file.
	DefaultLogFile = "/var/log/warmboot.log"

	// DefaultInstanceIDFile is the default source of the instance identifier.
	DefaultInstanceIDFile = "/etc/machine-id"

	// InstanceDirName is the directory holding per-instance cache artifacts.
	InstanceDirName = "instance"

	// DataDirName is the directory holding cross-instance bookkeeping files.
	DataDirName = "data"

	// ArtifactFileName is the name of the serialized instance state.
	ArtifactFileName = "obj.blob"

	// MarkerFileName is the name of the runtime version marker. The name is kept
	// for compatibility with tooling that inspects it directly.
	MarkerFileName = "python-version"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// CacheLayout holds the resolved locations of the cache files for one boot.
type CacheLayout struct {
	ArtifactPath string
	MarkerPath   string
}

// DefaultArtifactPath returns the artifact location under stateDir.
// It joins stateDir, instance and obj.blob.
func DefaultArtifactPath(stateDir string) string {
	return filepath.Join(stateDir, InstanceDirName, ArtifactFileName)
}

// DefaultMarkerPath returns the marker location under stateDir.
// It joins stateDir, data and python-version.
func DefaultMarkerPath(stateDir string) string {
	return filepath.Join(stateDir, DataDirName, MarkerFileName)
}

// ResolvePath returns p unchanged when absolute and joined onto stateDir otherwise.
func ResolvePath(stateDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(stateDir, p)
}
