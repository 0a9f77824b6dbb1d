package ptyshotconfig

import (
	"os"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Load defaults
// ---------------------------------------------------------------------------

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	if cfg.VLMEndpoint != "http://127.0.0.1:8080/v1/chat/completions" {
		t.Errorf("VLMEndpoint = %q, want default endpoint", cfg.VLMEndpoint)
	}
	if cfg.VLMModel != "qwen3" {
		t.Errorf("VLMModel = %q, want 'qwen3'", cfg.VLMModel)
	}
	if cfg.VLMMaxTokens != 400 {
		t.Errorf("VLMMaxTokens = %d, want 400", cfg.VLMMaxTokens)
	}
	if cfg.VLMTimeout != 60*time.Second {
		t.Errorf("VLMTimeout = %v, want 60s", cfg.VLMTimeout)
	}
	if cfg.SessionDir != "/tmp/ptyshot" {
		t.Errorf("SessionDir = %q, want '/tmp/ptyshot'", cfg.SessionDir)
	}
	if cfg.DefaultDelay != 100*time.Millisecond {
		t.Errorf("DefaultDelay = %v, want 100ms", cfg.DefaultDelay)
	}
	if cfg.DefaultSize != "standard" {
		t.Errorf("DefaultSize = %q, want 'standard'", cfg.DefaultSize)
	}
	if cfg.QuietWindow != 180*time.Millisecond {
		t.Errorf("QuietWindow = %v, want 180ms", cfg.QuietWindow)
	}
	if cfg.FSWatchScripts {
		t.Error("FSWatchScripts should default to false")
	}
}

// ---------------------------------------------------------------------------
// Load overrides
// ---------------------------------------------------------------------------

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	os.Setenv("PTYSHOT_VLM_MODEL", "llava")
	os.Setenv("PTYSHOT_SESSION_DIR", "/var/run/ptyshot")
	os.Setenv("PTYSHOT_DEFAULT_DELAY_MS", "250")
	os.Setenv("PTYSHOT_FSWATCH_SCRIPTS", "1")

	cfg := Load()

	if cfg.VLMModel != "llava" {
		t.Errorf("VLMModel = %q, want 'llava'", cfg.VLMModel)
	}
	if cfg.SessionDir != "/var/run/ptyshot" {
		t.Errorf("SessionDir = %q, want '/var/run/ptyshot'", cfg.SessionDir)
	}
	if cfg.DefaultDelay != 250*time.Millisecond {
		t.Errorf("DefaultDelay = %v, want 250ms", cfg.DefaultDelay)
	}
	if !cfg.FSWatchScripts {
		t.Error("FSWatchScripts should be true when PTYSHOT_FSWATCH_SCRIPTS is set")
	}
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	clearEnv(t)
	os.Setenv("PTYSHOT_VLM_MAX_TOKENS", "not-a-number")

	cfg := Load()
	if cfg.VLMMaxTokens != 400 {
		t.Errorf("VLMMaxTokens = %d, want default 400 on unparsable override", cfg.VLMMaxTokens)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"PTYSHOT_VLM_ENDPOINT", "PTYSHOT_VLM_MODEL", "PTYSHOT_VLM_MAX_TOKENS",
		"PTYSHOT_VLM_TIMEOUT_SECONDS", "PTYSHOT_VLM_CONNECT_TIMEOUT_SECONDS",
		"PTYSHOT_SESSION_DIR", "PTYSHOT_DEFAULT_DELAY_MS", "PTYSHOT_DEFAULT_SIZE",
		"PTYSHOT_QUIET_WINDOW_MS", "PTYSHOT_FSWATCH_SCRIPTS",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
	t.Cleanup(func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	})
}
