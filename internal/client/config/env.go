package config

import "os"

// APIBaseURLEnvName selects the remote API base URL.
const APIBaseURLEnvName = "BOOKSWAP_API_URL"

// parseEnv overlays Config with values from the environment. Unset or
// empty variables leave the earlier layers untouched.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(APIBaseURLEnvName); ok && v != "" {
		cfg.APIBaseURL = v
	}
}
