package config

import "os"

// App captures process-level configuration.
type App struct {
	LogLevel string
}

// FromEnv builds an App config from environment variables so main stays lean.
func FromEnv() App {
	level := os.Getenv("ROSTER_LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	return App{LogLevel: level}
}
