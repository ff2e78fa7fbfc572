package config

import "time"

// DefaultBackendAddr is where the vault service listens when nothing is configured
const DefaultBackendAddr = "127.0.0.1:7420"

// Config is the root application configuration.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Log     LogConfig     `yaml:"log"`
	Journal JournalConfig `yaml:"journal"`
	Dedup   DedupConfig   `yaml:"dedup"`
}

// BackendConfig locates the vault service.
type BackendConfig struct {
	Addr    string        `yaml:"addr"    env:"SMARTVAULT_BACKEND"         env-default:"127.0.0.1:7420"`
	Timeout time.Duration `yaml:"timeout" env:"SMARTVAULT_BACKEND_TIMEOUT" env-default:"30s"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"SMARTVAULT_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"SMARTVAULT_LOG_FORMAT" env-default:"console"`
	File   string `yaml:"file"   env:"SMARTVAULT_LOG_FILE"`
}

// JournalConfig controls the local activity journal. An empty Path selects
// the per-backend default.
type JournalConfig struct {
	Disabled  bool   `yaml:"disabled"  env:"SMARTVAULT_JOURNAL_DISABLED"`
	Path      string `yaml:"path"      env:"SMARTVAULT_JOURNAL_PATH"`
	Retention int    `yaml:"retention" env:"SMARTVAULT_JOURNAL_RETENTION" env-default:"5000"`
}

// DedupConfig holds smart dedup defaults.
type DedupConfig struct {
	DefaultThreshold int `yaml:"default_threshold" env:"SMARTVAULT_DEDUP_THRESHOLD" env-default:"90"`
}
