package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/age/internal/birthday"
	"github.com/specialistvlad/age/internal/calendar"
	"github.com/specialistvlad/age/internal/settings"
)

// DataFileName is the birthdate file looked up in the home directory.
const DataFileName = ".age"

// StdinPath as DataFile reads the birthdate records from standard input.
const StdinPath = "-"

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// AppConfig holds everything an App run needs. Empty strings and a false
// WarnDaysSet mean "not given"; NewConfig fills them in.
type AppConfig struct {
	DataFile     string
	SettingsFile string

	All    bool
	Days   bool
	Long   bool
	Sort   bool
	Warn   bool
	Strict bool

	WarnDays    int
	WarnDaysSet bool   // WarnDays was given explicitly, even as 0
	Today       string // YYYY-MM-DD; empty means the system clock

	LogLevel  string
	LogFormat string
}

// NewConfig fills in defaults and validates cfg. home is only consulted
// when DataFile is empty.
func NewConfig(cfg AppConfig, home string) (*AppConfig, error) {
	if cfg.DataFile == "" {
		if home == "" {
			return nil, errors.New("unable to determine home directory")
		}
		cfg.DataFile = filepath.Join(home, DataFileName)
	}
	if !cfg.WarnDaysSet {
		cfg.WarnDays = birthday.WarnWindow
	}
	if cfg.WarnDays < 0 {
		return nil, fmt.Errorf("warn days must not be negative, got %d", cfg.WarnDays)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaultLogFormat
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	if cfg.Today != "" {
		if _, err := calendar.Parse(cfg.Today); err != nil {
			return nil, fmt.Errorf("invalid --today date %q: %w", cfg.Today, err)
		}
	}
	return &cfg, nil
}

// mergeSettings layers flags over the settings file. Bool flags can only
// switch an option on; strings and numbers given as flags win.
func mergeSettings(flags AppConfig, file *settings.File) AppConfig {
	if file == nil {
		return flags
	}
	out := flags
	if out.DataFile == "" && file.DataFile != nil {
		out.DataFile = *file.DataFile
	}
	out.All = out.All || deref(file.All)
	out.Days = out.Days || deref(file.Days)
	out.Long = out.Long || deref(file.Long)
	out.Sort = out.Sort || deref(file.Sort)
	out.Warn = out.Warn || deref(file.Warn)
	out.Strict = out.Strict || deref(file.Strict)
	if !out.WarnDaysSet && file.WarnDays != nil {
		out.WarnDays = *file.WarnDays
		out.WarnDaysSet = true
	}
	if out.LogLevel == "" && file.LogLevel != nil {
		out.LogLevel = *file.LogLevel
	}
	if out.LogFormat == "" && file.LogFormat != nil {
		out.LogFormat = *file.LogFormat
	}
	return out
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
