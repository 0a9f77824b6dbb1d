// Package ptyshotconfig centralizes the environment-variable-driven
// configuration surface, grounded on the original implementation's
// config module: every setting has a documented env var and a
// hardcoded default, loaded once and handed to callers as a plain
// struct rather than threaded through globals.
package ptyshotconfig

import (
	"os"
	"strconv"
	"time"
)

// Config is the fully-resolved runtime configuration.
type Config struct {
	VLMEndpoint       string
	VLMModel          string
	VLMMaxTokens      int
	VLMTimeout        time.Duration
	VLMConnectTimeout time.Duration

	SessionDir     string
	DefaultDelay   time.Duration
	DefaultSize    string
	QuietWindow    time.Duration
	FSWatchScripts bool
}

// Load reads the environment and returns a Config with defaults
// applied, matching the table in this module's specification
// document: every PTYSHOT_* variable below corresponds to one field.
func Load() Config {
	return Config{
		VLMEndpoint:       getString("PTYSHOT_VLM_ENDPOINT", "http://127.0.0.1:8080/v1/chat/completions"),
		VLMModel:          getString("PTYSHOT_VLM_MODEL", "qwen3"),
		VLMMaxTokens:      getInt("PTYSHOT_VLM_MAX_TOKENS", 400),
		VLMTimeout:        getSeconds("PTYSHOT_VLM_TIMEOUT_SECONDS", 60),
		VLMConnectTimeout: getSeconds("PTYSHOT_VLM_CONNECT_TIMEOUT_SECONDS", 10),

		SessionDir:     getString("PTYSHOT_SESSION_DIR", "/tmp/ptyshot"),
		DefaultDelay:   time.Duration(getInt("PTYSHOT_DEFAULT_DELAY_MS", 100)) * time.Millisecond,
		DefaultSize:    getString("PTYSHOT_DEFAULT_SIZE", "standard"),
		QuietWindow:    time.Duration(getInt("PTYSHOT_QUIET_WINDOW_MS", 180)) * time.Millisecond,
		FSWatchScripts: os.Getenv("PTYSHOT_FSWATCH_SCRIPTS") != "",
	}
}

func getString(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func getInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getSeconds(name string, defSeconds int) time.Duration {
	return time.Duration(getInt(name, defSeconds)) * time.Second
}
