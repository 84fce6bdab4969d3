package config

// Warmfile represents the structure of the warmboot.yaml configuration file.
type Warmfile struct {
	StateDir       string            `yaml:"state_dir"`
	Artifact       string            `yaml:"artifact"`
	Marker         string            `yaml:"marker"`
	LogFile        string            `yaml:"log_file"`
	RuntimeVersion string            `yaml:"runtime_version"`
	Encoding       string            `yaml:"encoding"`
	InstanceIDFile string            `yaml:"instance_id_file"`
	Datasource     string            `yaml:"datasource"`
	Config         map[string]string `yaml:"config"`
	Log            LogDTO            `yaml:"log"`
	Telemetry      TelemetryDTO      `yaml:"telemetry"`
}

// LogDTO represents the log section of the configuration.
type LogDTO struct {
	JSON    bool `yaml:"json"`
	Verbose bool `yaml:"verbose"`
}

// TelemetryDTO represents the telemetry section of the configuration.
type TelemetryDTO struct {
	Exporter string `yaml:"exporter"`
}

// envOverrides holds the WARMBOOT_* variables. Unset variables stay nil.
type envOverrides struct {
	StateDir       *string `env:"WARMBOOT_STATE_DIR"`
	Artifact       *string `env:"WARMBOOT_ARTIFACT"`
	Marker         *string `env:"WARMBOOT_MARKER"`
	LogFile        *string `env:"WARMBOOT_LOG_FILE"`
	RuntimeVersion *string `env:"WARMBOOT_RUNTIME_VERSION"`
	Encoding       *string `env:"WARMBOOT_ENCODING"`
	InstanceIDFile *string `env:"WARMBOOT_INSTANCE_ID_FILE"`
	Datasource     *string `env:"WARMBOOT_DATASOURCE"`
	LogJSON        *bool   `env:"WARMBOOT_LOG_JSON"`
	LogVerbose     *bool   `env:"WARMBOOT_LOG_VERBOSE"`
	Exporter       *string `env:"WARMBOOT_TELEMETRY_EXPORTER"`
}

func (o *envOverrides) apply(w *Warmfile) {
	setString(&w.StateDir, o.StateDir)
	setString(&w.Artifact, o.Artifact)
	setString(&w.Marker, o.Marker)
	setString(&w.LogFile, o.LogFile)
	setString(&w.RuntimeVersion, o.RuntimeVersion)
	setString(&w.Encoding, o.Encoding)
	setString(&w.InstanceIDFile, o.InstanceIDFile)
	setString(&w.Datasource, o.Datasource)
	setString(&w.Telemetry.Exporter, o.Exporter)
	if o.LogJSON != nil {
		w.Log.JSON = *o.LogJSON
	}
	if o.LogVerbose != nil {
		w.Log.Verbose = *o.LogVerbose
	}
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}
