package config

// AppConfig identifies the embedding service.
type AppConfig struct {
	Env         string `yaml:"env" mapstructure:"env"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	NodeID      string `yaml:"node_id" mapstructure:"node_id"`
}

// LogConfig controls the shared console logger.
type LogConfig struct {
	Format       string `yaml:"format" mapstructure:"format"`
	Level        string `yaml:"level" mapstructure:"level"`
	ReportCaller bool   `yaml:"report_caller" mapstructure:"report_caller"`
}

// FaultConfig controls response formatting.
type FaultConfig struct {
	// Verbose permits stack traces in outgoing error responses. Intended
	// for non-production environments; FAULT_VERBOSE overrides it.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// FaultLogConfig places the date-partitioned fault log.
type FaultLogConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir        string `yaml:"dir" mapstructure:"dir"`
	Filename   string `yaml:"filename" mapstructure:"filename"`
	MaxAgeDays int    `yaml:"max_age_days" mapstructure:"max_age_days"`
}

// AlertConfig controls per-fault alert notification.
type AlertConfig struct {
	Enabled     bool     `yaml:"enabled" mapstructure:"enabled"`
	MinSeverity string   `yaml:"min_severity" mapstructure:"min_severity"`
	DedupWindow Duration `yaml:"dedup_window" mapstructure:"dedup_window"`
}

// RedisConfig connects the alert de-dup store.
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Db       int    `yaml:"db" mapstructure:"db"`
}

// TracingConfig configures the OpenTelemetry exporter.
type TracingConfig struct {
	Exporter     string            `yaml:"exporter" mapstructure:"exporter"`
	Endpoint     string            `yaml:"endpoint" mapstructure:"endpoint"`
	ServiceName  string            `yaml:"service_name" mapstructure:"service_name"`
	Insecure     bool              `yaml:"insecure" mapstructure:"insecure"`
	SampleRatio  float64           `yaml:"sample_ratio" mapstructure:"sample_ratio"`
	ResourceTags map[string]string `yaml:"resource_tags" mapstructure:"resource_tags"`
}
