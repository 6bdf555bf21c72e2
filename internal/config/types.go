package config

// Config is the full cfadmin configuration.
type Config struct {
	API        APIConfig        `json:"api"`
	Cloudflare CloudflareConfig `json:"cloudflare"`
	Storage    StorageConfig    `json:"storage"`
	Logging    LoggingConfig    `json:"logging"`
}

// APIConfig contains management API settings.
type APIConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	// APIKey, when set, is required on every request via X-API-Key.
	APIKey        string `json:"api_key"`
	EnableSwagger bool   `json:"enable_swagger"`
	EnableUI      bool   `json:"enable_ui"`
}

// CloudflareConfig contains settings for the upstream Cloudflare API.
type CloudflareConfig struct {
	// BaseURL overrides the production API root. Leave empty outside tests.
	BaseURL string `json:"base_url,omitempty"`
	// Timeout is the HTTP client timeout (e.g. "30s").
	Timeout string `json:"timeout"`
}

// StorageConfig locates the secret store database.
type StorageConfig struct {
	Path string `json:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `json:"level"`
	Structured       bool              `json:"structured"`
	StructuredFormat string            `json:"structured_format"`
	IncludePID       bool              `json:"include_pid"`
	ExtraFields      map[string]string `json:"extra_fields,omitempty"`
}
