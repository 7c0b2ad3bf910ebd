package logger

import "sync"

type LoggerArg struct {
	Key   string
	Value string
}

type GlobalLoggerConfig struct {
	Args []LoggerArg
}

var (
	defaultLogger *Logger
	onceLogger    sync.Once
)

func InitDefaultLogger(config GlobalLoggerConfig) {
	onceLogger.Do(func() {
		defaultLogger = New()
		for _, arg := range config.Args {
			defaultLogger.zl = defaultLogger.zl.With().Str(arg.Key, arg.Value).Logger()
		}
	})
}

// Default returns the process-wide logger, initializing it with defaults if
// InitDefaultLogger was never called.
func Default() *Logger {
	InitDefaultLogger(GlobalLoggerConfig{})
	return defaultLogger
}
