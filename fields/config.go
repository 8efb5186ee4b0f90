package fields

// Config is the service-wide configuration, parsed from config.json at boot.
// Secrets (API keys) can be left out of the file and provided through the
// environment instead; see main's parseConfig.
type Config struct {
	Port    string `json:"port"`
	IsDebug bool   `json:"is_debug"`

	// Google Sheets data source
	SpreadsheetID string `json:"spreadsheet_id"`
	SheetRange    string `json:"sheet_range"`
	SheetsAPIKey  string `json:"sheets_api_key"`

	// Gemini summarizer
	GeminiAPIKey     string `json:"gemini_api_key"`
	GeminiModel      string `json:"gemini_model"`
	SummaryTimeoutMs int    `json:"summary_timeout_ms"`

	// infra
	RedisAddr    string `json:"redis_address"`
	CacheTTLSecs int    `json:"cache_ttl_secs"`
	DatabasePath string `json:"database_path"`
}

// Defaults fills zero values so the config file only has to carry what
// differs from a local dev setup.
func (c *Config) Defaults() {
	if c.Port == "" {
		c.Port = ":8080"
	}
	if c.SheetRange == "" {
		c.SheetRange = "Entregas!A1:Z"
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.0-flash"
	}
	if c.SummaryTimeoutMs <= 0 {
		c.SummaryTimeoutMs = 20000
	}
	if c.RedisAddr == "" {
		c.RedisAddr = "localhost:6379"
	}
	if c.CacheTTLSecs <= 0 {
		c.CacheTTLSecs = 60
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "entregas.db"
	}
}
