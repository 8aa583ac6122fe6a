package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// configDir overrides the XDG config directory.
	configDir string
}

// Option customises a Manager.
type Option func(*Manager)

// WithConfigDir reads and writes the config file in dir instead of the XDG
// config directory.
func WithConfigDir(dir string) Option {
	return func(m *Manager) { m.configDir = dir }
}

// NewManager creates a new configuration manager.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	v := m.viper
	v.SetConfigName("config")
	v.SetConfigType("toml")

	if m.configDir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.configDir = configDir
	}
	v.AddConfigPath(m.configDir)

	// PAGEHOST_HOME_URL, PAGEHOST_ENGINE_HEADLESS, ...
	v.SetEnvPrefix("PAGEHOST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "PAGEHOST_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PAGEHOST_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PAGEHOST_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PAGEHOST_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables. A
// missing file is created with the defaults, alongside its JSON schema.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.build()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.configDir, configName)
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// build unmarshals, fills dynamic paths, normalizes and validates.
func (m *Manager) build() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := EnsurePaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// EnsurePaths fills the database, export and log locations left empty.
func EnsurePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Export.Dir == "" {
		dir, err := GetExportDir()
		if err != nil {
			return fmt.Errorf("failed to get export directory: %w", err)
		}
		config.Export.Dir = dir
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
	return nil
}

// normalizeConfig folds case and whitespace and maps unknown enum values
// to their defaults.
func normalizeConfig(config *Config) {
	config.HomeURL = strings.TrimSpace(config.HomeURL)
	config.Injection.BackgroundColor = strings.TrimSpace(config.Injection.BackgroundColor)
	config.Engine.UserAgent = strings.TrimSpace(config.Engine.UserAgent)
	config.Engine.ApplicationName = strings.TrimSpace(config.Engine.ApplicationName)

	switch ContentMode(strings.ToLower(string(config.Engine.ContentMode))) {
	case ContentModeDesktop:
		config.Engine.ContentMode = ContentModeDesktop
	case ContentModeMobile:
		config.Engine.ContentMode = ContentModeMobile
	default:
		config.Engine.ContentMode = ContentModeMobile
	}

	switch HTTPSPolicy(strings.ToLower(string(config.Engine.HTTPSPolicy))) {
	case HTTPSUpgrade:
		config.Engine.HTTPSPolicy = HTTPSUpgrade
	default:
		config.Engine.HTTPSPolicy = HTTPSKeepAsRequested
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		// "text" is accepted as an alias.
		config.Logging.Format = "console"
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configName)
}

// SchemaFile returns the path of the JSON schema next to the config file.
func (m *Manager) SchemaFile() string {
	return filepath.Join(m.configDir, schemaName)
}

// createDefaultConfig writes the default configuration and its schema.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, configName)
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	defaults := DefaultConfig()
	// Dynamic paths stay unset so the file follows XDG changes.
	defaults.Logging.LogDir = ""
	if err := WriteConfigOrdered(defaults, configFile); err != nil {
		return err
	}
	if err := WriteSchema(m.SchemaFile()); err != nil {
		return fmt.Errorf("failed to write config schema: %w", err)
	}
	m.viper.SetConfigFile(configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("home_url", defaults.HomeURL)
	m.viper.SetDefault("description_cache_size", defaults.DescriptionCacheSize)

	m.setEngineDefaults(defaults)
	m.setInjectionDefaults(defaults)
	m.setExportDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setNavigationLogDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	// Database.Path is set dynamically in build().
	m.viper.SetDefault("database.path", "")
}

func (m *Manager) setEngineDefaults(defaults *Config) {
	m.viper.SetDefault("engine.headless", defaults.Engine.Headless)
	m.viper.SetDefault("engine.bin", defaults.Engine.Bin)
	m.viper.SetDefault("engine.control_url", defaults.Engine.ControlURL)
	m.viper.SetDefault("engine.user_data_dir", defaults.Engine.UserDataDir)
	m.viper.SetDefault("engine.user_agent", defaults.Engine.UserAgent)
	m.viper.SetDefault("engine.application_name", defaults.Engine.ApplicationName)
	m.viper.SetDefault("engine.content_mode", string(defaults.Engine.ContentMode))
	m.viper.SetDefault("engine.javascript_enabled", defaults.Engine.JavaScriptEnabled)
	m.viper.SetDefault("engine.https_policy", string(defaults.Engine.HTTPSPolicy))
	m.viper.SetDefault("engine.persistent_data_store", defaults.Engine.PersistentDataStore)
	m.viper.SetDefault("engine.viewport.width", defaults.Engine.Viewport.Width)
	m.viper.SetDefault("engine.viewport.height", defaults.Engine.Viewport.Height)
}

func (m *Manager) setInjectionDefaults(defaults *Config) {
	m.viper.SetDefault("injection.enabled", defaults.Injection.Enabled)
	m.viper.SetDefault("injection.background_color", defaults.Injection.BackgroundColor)
}

func (m *Manager) setExportDefaults(defaults *Config) {
	m.viper.SetDefault("export.dir", defaults.Export.Dir)
	m.viper.SetDefault("export.print_background", defaults.Export.PrintBackground)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setNavigationLogDefaults(defaults *Config) {
	m.viper.SetDefault("navigation_log.enabled", defaults.NavigationLog.Enabled)
	m.viper.SetDefault("navigation_log.queue_size", defaults.NavigationLog.QueueSize)
	m.viper.SetDefault("navigation_log.retention_days", defaults.NavigationLog.RetentionDays)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
}
