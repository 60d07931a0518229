package config

const (
	defaultConfigPath   = "~/.config/workoutgen/config.toml"
	projectConfigName   = "workoutgen.toml"
	defaultOutputPath   = "workouts.json"
	defaultOutputFormat = "json"
	defaultWeeks        = 6
	defaultLogFormat    = "console"
	defaultLogLevel     = LogLevelInfo
)

// Accepted logging.level values.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Path:   defaultOutputPath,
			Format: defaultOutputFormat,
			Lock:   true,
		},
		Program: Program{
			Weeks: defaultWeeks,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
