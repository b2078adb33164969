package app

// Environment variables consulted when the matching flag is not given.
const (
	EnvDataFile     = "AGE_FILE"
	EnvSettingsFile = "AGE_CONFIG"
	EnvLogLevel     = "AGE_LOG_LEVEL"
)

// applyEnv fills flag gaps from the environment. It runs before the
// settings file is read, so AGE_CONFIG can point at it.
func applyEnv(cfg AppConfig, getenv func(string) string) AppConfig {
	cfg.DataFile = firstNonEmpty(cfg.DataFile, getenv(EnvDataFile))
	cfg.SettingsFile = firstNonEmpty(cfg.SettingsFile, getenv(EnvSettingsFile))
	cfg.LogLevel = firstNonEmpty(cfg.LogLevel, getenv(EnvLogLevel))
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
