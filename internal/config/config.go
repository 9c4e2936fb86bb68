package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	BoardAPIKey         string
	BoardAPIURL         string
	BoardRequestSecs    int
	OptionsCacheTTLSecs int
	SignalPollAttempts  int
	SignalPollDelaySecs int

	HTTPPort         int
	TelegramBotToken string

	MCPTransport          string
	MCPHTTPEnabled        bool
	MCPHTTPBind           string
	MCPHTTPPort           int
	MCPAuthToken          string
	MCPRequestTimeoutSecs int
	MCPRateLimitPerMin    int
}

func Load() *Config {
	cfg := &Config{
		BoardAPIKey:      os.Getenv("BOARD_API_KEY"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		MCPAuthToken:     os.Getenv("MCP_AUTH_TOKEN"),
	}

	if cfg.BoardAPIKey == "" {
		log.Println("Warning: BOARD_API_KEY not set, board queries will fail")
	}
	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set")
	}

	cfg.BoardAPIURL = strings.TrimSpace(os.Getenv("BOARD_API_URL"))
	if cfg.BoardAPIURL == "" {
		cfg.BoardAPIURL = "https://api.strikeboard.dev"
	}

	cfg.BoardRequestSecs = 30
	if v := strings.TrimSpace(os.Getenv("BOARD_REQUEST_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BoardRequestSecs = n
		}
	}

	cfg.OptionsCacheTTLSecs = 60
	if v := strings.TrimSpace(os.Getenv("OPTIONS_CACHE_TTL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.OptionsCacheTTLSecs = n
		}
	}

	cfg.SignalPollAttempts = 10
	if v := strings.TrimSpace(os.Getenv("SIGNAL_POLL_ATTEMPTS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SignalPollAttempts = n
		}
	}

	cfg.SignalPollDelaySecs = 2
	if v := strings.TrimSpace(os.Getenv("SIGNAL_POLL_DELAY_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SignalPollDelaySecs = n
		}
	}

	cfg.HTTPPort = 8080
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	cfg.MCPTransport = strings.ToLower(strings.TrimSpace(os.Getenv("MCP_TRANSPORT")))
	if cfg.MCPTransport == "" {
		cfg.MCPTransport = "stdio"
	}
	if cfg.MCPTransport != "stdio" && cfg.MCPTransport != "http" {
		log.Printf("Warning: unsupported MCP_TRANSPORT=%q, defaulting to stdio", cfg.MCPTransport)
		cfg.MCPTransport = "stdio"
	}

	cfg.MCPHTTPEnabled = strings.EqualFold(strings.TrimSpace(os.Getenv("MCP_HTTP_ENABLED")), "true")

	cfg.MCPHTTPBind = strings.TrimSpace(os.Getenv("MCP_HTTP_BIND"))
	if cfg.MCPHTTPBind == "" {
		cfg.MCPHTTPBind = "127.0.0.1"
	}

	cfg.MCPHTTPPort = 8090
	if v := strings.TrimSpace(os.Getenv("MCP_HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPHTTPPort = n
		}
	}

	// Signal generation holds a tool call open while polling, so the MCP
	// request timeout must exceed attempts x delay.
	cfg.MCPRequestTimeoutSecs = 30
	if v := strings.TrimSpace(os.Getenv("MCP_REQUEST_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPRequestTimeoutSecs = n
		}
	}

	cfg.MCPRateLimitPerMin = 60
	if v := strings.TrimSpace(os.Getenv("MCP_RATE_LIMIT_PER_MIN")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPRateLimitPerMin = n
		}
	}

	return cfg
}
