package config

// DefaultAPIBaseURL is the public backend used when nothing overrides it.
const DefaultAPIBaseURL = "https://bookswap-backend-np9d.onrender.com/api"

// Config holds runtime settings for the BookSwap CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - DatabasePath: sqlite file holding the persisted credential and the
//     offline catalog cache.
type Config struct {
	APIBaseURL   string
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.DatabasePath = "bookswap.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
