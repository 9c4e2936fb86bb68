package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOARD_API_KEY", "")
	t.Setenv("BOARD_API_URL", "")
	t.Setenv("BOARD_REQUEST_SECS", "")
	t.Setenv("OPTIONS_CACHE_TTL_SECS", "")
	t.Setenv("SIGNAL_POLL_ATTEMPTS", "")
	t.Setenv("SIGNAL_POLL_DELAY_SECS", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("MCP_TRANSPORT", "")
	t.Setenv("MCP_HTTP_ENABLED", "")
	t.Setenv("MCP_HTTP_BIND", "")
	t.Setenv("MCP_HTTP_PORT", "")
	t.Setenv("MCP_AUTH_TOKEN", "")
	t.Setenv("MCP_REQUEST_TIMEOUT_SECS", "")
	t.Setenv("MCP_RATE_LIMIT_PER_MIN", "")

	cfg := Load()
	if cfg.BoardAPIURL != "https://api.strikeboard.dev" {
		t.Fatalf("expected default board url, got %s", cfg.BoardAPIURL)
	}
	if cfg.BoardRequestSecs != 30 {
		t.Fatalf("expected default request secs 30, got %d", cfg.BoardRequestSecs)
	}
	if cfg.OptionsCacheTTLSecs != 60 {
		t.Fatalf("expected default cache ttl 60, got %d", cfg.OptionsCacheTTLSecs)
	}
	if cfg.SignalPollAttempts != 10 || cfg.SignalPollDelaySecs != 2 {
		t.Fatalf("unexpected signal poll defaults: attempts=%d delay=%d", cfg.SignalPollAttempts, cfg.SignalPollDelaySecs)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("expected default http port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.MCPTransport != "stdio" {
		t.Fatalf("expected default MCP transport stdio, got %s", cfg.MCPTransport)
	}
	if cfg.MCPHTTPEnabled {
		t.Fatal("expected MCP http disabled by default")
	}
	if cfg.MCPHTTPBind != "127.0.0.1" || cfg.MCPHTTPPort != 8090 {
		t.Fatalf("unexpected MCP http defaults: %s:%d", cfg.MCPHTTPBind, cfg.MCPHTTPPort)
	}
	if cfg.MCPRequestTimeoutSecs != 30 || cfg.MCPRateLimitPerMin != 60 {
		t.Fatalf("unexpected MCP defaults: timeout=%d rate=%d", cfg.MCPRequestTimeoutSecs, cfg.MCPRateLimitPerMin)
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("BOARD_API_KEY", "key")
	t.Setenv("BOARD_API_URL", "https://board.example.com")
	t.Setenv("BOARD_REQUEST_SECS", "45")
	t.Setenv("OPTIONS_CACHE_TTL_SECS", "120")
	t.Setenv("SIGNAL_POLL_ATTEMPTS", "20")
	t.Setenv("SIGNAL_POLL_DELAY_SECS", "5")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("MCP_TRANSPORT", "HTTP")
	t.Setenv("MCP_HTTP_ENABLED", "true")
	t.Setenv("MCP_HTTP_BIND", "0.0.0.0")
	t.Setenv("MCP_HTTP_PORT", "9191")
	t.Setenv("MCP_AUTH_TOKEN", "secret")
	t.Setenv("MCP_REQUEST_TIMEOUT_SECS", "60")
	t.Setenv("MCP_RATE_LIMIT_PER_MIN", "75")

	cfg := Load()
	if cfg.BoardAPIKey != "key" || cfg.BoardAPIURL != "https://board.example.com" {
		t.Fatalf("unexpected board config: %+v", cfg)
	}
	if cfg.BoardRequestSecs != 45 || cfg.OptionsCacheTTLSecs != 120 {
		t.Fatalf("unexpected board tuning: %+v", cfg)
	}
	if cfg.SignalPollAttempts != 20 || cfg.SignalPollDelaySecs != 5 {
		t.Fatalf("unexpected signal poll config: %+v", cfg)
	}
	if cfg.HTTPPort != 9090 || cfg.TelegramBotToken != "token" {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
	if cfg.MCPTransport != "http" || !cfg.MCPHTTPEnabled || cfg.MCPHTTPBind != "0.0.0.0" || cfg.MCPHTTPPort != 9191 || cfg.MCPAuthToken != "secret" {
		t.Fatalf("unexpected MCP config: %+v", cfg)
	}
	if cfg.MCPRequestTimeoutSecs != 60 || cfg.MCPRateLimitPerMin != 75 {
		t.Fatalf("unexpected MCP timeout/rate: %+v", cfg)
	}

	t.Setenv("BOARD_REQUEST_SECS", "bad")
	t.Setenv("OPTIONS_CACHE_TTL_SECS", "-1")
	t.Setenv("SIGNAL_POLL_ATTEMPTS", "0")
	t.Setenv("SIGNAL_POLL_DELAY_SECS", "bad")
	t.Setenv("HTTP_PORT", "bad")
	t.Setenv("MCP_TRANSPORT", "websocket")
	t.Setenv("MCP_HTTP_PORT", "bad")
	t.Setenv("MCP_REQUEST_TIMEOUT_SECS", "bad")
	t.Setenv("MCP_RATE_LIMIT_PER_MIN", "bad")
	cfg = Load()
	if cfg.BoardRequestSecs != 30 || cfg.OptionsCacheTTLSecs != 60 {
		t.Fatalf("invalid board numbers should fall back to defaults: %+v", cfg)
	}
	if cfg.SignalPollAttempts != 10 || cfg.SignalPollDelaySecs != 2 {
		t.Fatalf("invalid signal poll values should fall back to defaults: %+v", cfg)
	}
	if cfg.HTTPPort != 8080 || cfg.MCPHTTPPort != 8090 {
		t.Fatalf("invalid ports should fall back to defaults: %+v", cfg)
	}
	if cfg.MCPTransport != "stdio" {
		t.Fatalf("unsupported MCP transport should fall back to stdio, got %s", cfg.MCPTransport)
	}
	if cfg.MCPRequestTimeoutSecs != 30 || cfg.MCPRateLimitPerMin != 60 {
		t.Fatalf("invalid MCP numeric values should fall back to defaults: %+v", cfg)
	}
}
