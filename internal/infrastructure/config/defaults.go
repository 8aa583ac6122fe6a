package config

const (
	defaultHomeURL              = "https://medium.com/"
	defaultBackgroundColor      = "rgba(255, 255, 191)"
	defaultApplicationName      = "pagehost"
	defaultDescriptionCacheSize = 128
	defaultNavigationQueueSize  = 100
	defaultNavigationRetention  = 30
	defaultMaxLogAgeDays        = 7
	defaultMaxLogSizeMB         = 10
	defaultMaxLogBackups        = 3
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for pagehost.
func DefaultConfig() *Config {
	return &Config{
		HomeURL: defaultHomeURL,
		Engine: EngineConfig{
			Headless:          true,
			ApplicationName:   defaultApplicationName,
			ContentMode:       ContentModeMobile,
			JavaScriptEnabled: true,
			HTTPSPolicy:       HTTPSKeepAsRequested,
		},
		Database: DatabaseConfig{
			// Path is set dynamically in Load()
		},
		Export: ExportConfig{
			PrintBackground: true,
		},
		Injection: InjectionConfig{
			Enabled:         true,
			BackgroundColor: defaultBackgroundColor,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			LogDir:        getDefaultLogDir(),
			MaxAge:        defaultMaxLogAgeDays,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			Compress:      true,
		},
		NavigationLog: NavigationLogConfig{
			Enabled:       true,
			QueueSize:     defaultNavigationQueueSize,
			RetentionDays: defaultNavigationRetention,
		},
		Appearance: AppearanceConfig{
			Palette: PaletteConfig{
				Background:     "#0a0a0b",
				Surface:        "#1a1a1b",
				SurfaceVariant: "#2d2d2d",
				Text:           "#ffffff",
				Muted:          "#909090",
				Accent:         "#4ade80",
				Border:         "#333333",
			},
		},
		DescriptionCacheSize: defaultDescriptionCacheSize,
	}
}
