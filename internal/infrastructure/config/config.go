// Package config loads, validates and watches the pagehost configuration.
package config

// Config represents the complete configuration for pagehost.
type Config struct {
	// HomeURL is loaded at startup. Its host is the only host the page may
	// navigate to in place; every other main-frame navigation is opened
	// externally.
	HomeURL  string         `mapstructure:"home_url" toml:"home_url" validate:"required,http_url" jsonschema:"description=Start page; its host scopes in-place navigation"`
	Engine   EngineConfig   `mapstructure:"engine" toml:"engine"`
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Export   ExportConfig   `mapstructure:"export" toml:"export"`
	// Injection controls the stylesheet added on every page change.
	Injection     InjectionConfig     `mapstructure:"injection" toml:"injection"`
	Logging       LoggingConfig       `mapstructure:"logging" toml:"logging"`
	NavigationLog NavigationLogConfig `mapstructure:"navigation_log" toml:"navigation_log"`
	Appearance    AppearanceConfig    `mapstructure:"appearance" toml:"appearance"`
	// DescriptionCacheSize bounds the per-URL page description cache. 0 disables it.
	DescriptionCacheSize int `mapstructure:"description_cache_size" toml:"description_cache_size" validate:"gte=0"`
}

// ContentMode selects desktop or mobile content.
type ContentMode string

const (
	ContentModeDesktop ContentMode = "desktop"
	ContentModeMobile  ContentMode = "mobile"
)

// HTTPSPolicy selects whether plain-http navigations are upgraded.
type HTTPSPolicy string

const (
	HTTPSKeepAsRequested HTTPSPolicy = "keep"
	HTTPSUpgrade         HTTPSPolicy = "upgrade"
)

// EngineConfig controls the Chromium instance and page options.
type EngineConfig struct {
	// Headless runs the browser without a window.
	Headless bool `mapstructure:"headless" toml:"headless"`
	// Bin is the browser executable. Empty lets the launcher find or download one.
	Bin string `mapstructure:"bin" toml:"bin"`
	// ControlURL connects to an already running browser instead of launching one.
	ControlURL string `mapstructure:"control_url" toml:"control_url" validate:"omitempty,url"`
	// UserDataDir is the profile directory. Empty uses a temporary profile.
	UserDataDir string `mapstructure:"user_data_dir" toml:"user_data_dir"`
	// UserAgent replaces the browser user agent entirely.
	UserAgent string `mapstructure:"user_agent" toml:"user_agent"`
	// ApplicationName is appended to the default user agent.
	ApplicationName     string         `mapstructure:"application_name" toml:"application_name"`
	ContentMode         ContentMode    `mapstructure:"content_mode" toml:"content_mode" validate:"oneof=desktop mobile" jsonschema:"enum=desktop,enum=mobile"`
	JavaScriptEnabled   bool           `mapstructure:"javascript_enabled" toml:"javascript_enabled"`
	HTTPSPolicy         HTTPSPolicy    `mapstructure:"https_policy" toml:"https_policy" validate:"oneof=keep upgrade" jsonschema:"enum=keep,enum=upgrade"`
	PersistentDataStore bool           `mapstructure:"persistent_data_store" toml:"persistent_data_store"`
	Viewport            ViewportConfig `mapstructure:"viewport" toml:"viewport"`
}

// ViewportConfig is the page size in CSS pixels. Zero picks a size for the
// content mode.
type ViewportConfig struct {
	Width  int `mapstructure:"width" toml:"width" validate:"gte=0,lte=7680"`
	Height int `mapstructure:"height" toml:"height" validate:"gte=0,lte=4320"`
}

// InjectionConfig controls the background stylesheet.
type InjectionConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
	// BackgroundColor is any CSS colour value.
	BackgroundColor string `mapstructure:"background_color" toml:"background_color" validate:"omitempty,css_value"`
}

// ExportConfig controls PDF and image export.
type ExportConfig struct {
	// Dir receives exported files. Defaults to the data directory.
	Dir             string `mapstructure:"dir" toml:"dir"`
	PrintBackground bool   `mapstructure:"print_background" toml:"print_background"`
}

// DatabaseConfig holds the SQLite location.
type DatabaseConfig struct {
	// Path is set dynamically when empty.
	Path string `mapstructure:"path" toml:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" validate:"oneof=trace debug info warn error fatal panic" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" validate:"oneof=console json" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	// MaxAge is the number of days rotated logs are kept.
	MaxAge     int  `mapstructure:"max_age" toml:"max_age" validate:"gte=0"`
	MaxSizeMB  int  `mapstructure:"max_size_mb" toml:"max_size_mb" validate:"gte=1"`
	MaxBackups int  `mapstructure:"max_backups" toml:"max_backups" validate:"gte=0"`
	Compress   bool `mapstructure:"compress" toml:"compress"`
}

// NavigationLogConfig controls the persisted audit of policy decisions.
type NavigationLogConfig struct {
	Enabled   bool `mapstructure:"enabled" toml:"enabled"`
	QueueSize int  `mapstructure:"queue_size" toml:"queue_size" validate:"gte=1,lte=100000"`
	// RetentionDays prunes older records at startup. 0 keeps everything.
	RetentionDays int `mapstructure:"retention_days" toml:"retention_days" validate:"gte=0"`
}

// AppearanceConfig controls the terminal UI.
type AppearanceConfig struct {
	Palette PaletteConfig `mapstructure:"palette" toml:"palette"`
}

// PaletteConfig holds the terminal UI colors as #RRGGBB.
type PaletteConfig struct {
	Background     string `mapstructure:"background" toml:"background" validate:"hex_rgb"`
	Surface        string `mapstructure:"surface" toml:"surface" validate:"hex_rgb"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" validate:"hex_rgb"`
	Text           string `mapstructure:"text" toml:"text" validate:"hex_rgb"`
	Muted          string `mapstructure:"muted" toml:"muted" validate:"hex_rgb"`
	Accent         string `mapstructure:"accent" toml:"accent" validate:"hex_rgb"`
	Border         string `mapstructure:"border" toml:"border" validate:"hex_rgb"`
}
