/*
Package configs is responsible for loading and parsing the application's configuration settings.

It reads operating system environment variables for the bot account, the target room, the
service address (or the discovery endpoint used to find it), moderation settings, the optional
status API and the reconnect policy.
*/
package configs

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultDiscoveryURL is the endpoint that publishes the chat service addresses.
const DefaultDiscoveryURL = "http://xat.com/web_gear/chat/ip2.htm"

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Settings
	Environment string

	// Bot Account Settings
	RegName     string
	RegID       string
	Password    string
	DisplayName string
	Avatar      string
	RoomID      string

	// Moderation Settings
	BannedPhrases []string

	// Service Address Settings
	DiscoveryURL string
	ServiceAddr  string

	// Status API Settings
	StatusPort     int
	AllowedOrigins []string

	// Reconnect Settings
	Reconnect         bool
	ReconnectInterval time.Duration
}

// LoadConfig reads and parses the application configuration from environment variables.
// It applies defaults, performs type conversions and validation, and returns any error encountered.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Settings ---
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// --- Bot Account Settings ---
	cfg.RegName = os.Getenv("BOT_REG_NAME")
	if cfg.RegName == "" {
		return nil, fmt.Errorf("BOT_REG_NAME environment variable is required")
	}

	var err error
	if cfg.RegID, err = requireNumeric("BOT_REG_ID"); err != nil {
		return nil, err
	}

	cfg.Password = os.Getenv("BOT_PASSWORD")
	if cfg.Password == "" {
		return nil, fmt.Errorf("BOT_PASSWORD environment variable is required")
	}

	cfg.DisplayName = os.Getenv("BOT_DISPLAY_NAME")
	if cfg.DisplayName == "" {
		cfg.DisplayName = cfg.RegName
	}

	cfg.Avatar = os.Getenv("BOT_AVATAR")
	if cfg.Avatar == "" {
		cfg.Avatar = "0"
	}

	if cfg.RoomID, err = requireNumeric("BOT_ROOM_ID"); err != nil {
		return nil, err
	}

	// --- Moderation Settings ---
	if phrases, ok := os.LookupEnv("BANNED_PHRASES"); ok {
		cfg.BannedPhrases = splitList(phrases)
	} else {
		cfg.BannedPhrases = []string{"smeckledorfed"}
	}

	// --- Service Address Settings ---
	cfg.ServiceAddr = os.Getenv("SERVICE_ADDR")
	if cfg.ServiceAddr != "" {
		if _, _, err := net.SplitHostPort(cfg.ServiceAddr); err != nil {
			return nil, fmt.Errorf("invalid SERVICE_ADDR environment variable: %w", err)
		}
	}

	cfg.DiscoveryURL = os.Getenv("DISCOVERY_URL")
	if cfg.DiscoveryURL == "" {
		cfg.DiscoveryURL = DefaultDiscoveryURL
	}

	// --- Status API Settings ---
	portStr := os.Getenv("STATUS_PORT")
	if portStr == "" {
		portStr = "0"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STATUS_PORT environment variable: %w", err)
	}
	if port != 0 && (port < 1024 || port > 65535) {
		return nil, fmt.Errorf("STATUS_PORT %d is outside the recommended range (%d-%d) to avoid privileged ports", port, 1024, 65535)
	}
	cfg.StatusPort = port

	cfg.AllowedOrigins = splitList(os.Getenv("ALLOWED_ORIGINS"))

	// --- Reconnect Settings ---
	if reconnectStr := os.Getenv("RECONNECT"); reconnectStr != "" {
		cfg.Reconnect, err = strconv.ParseBool(reconnectStr)
		if err != nil {
			return nil, fmt.Errorf("invalid RECONNECT environment variable: %w", err)
		}
	}

	intervalStr := os.Getenv("RECONNECT_INTERVAL")
	if intervalStr == "" {
		intervalStr = "30s"
	}
	cfg.ReconnectInterval, err = time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RECONNECT_INTERVAL environment variable: %w", err)
	}
	if cfg.ReconnectInterval <= 0 {
		return nil, fmt.Errorf("RECONNECT_INTERVAL must be positive, got %s", cfg.ReconnectInterval)
	}

	return cfg, nil
}

// requireNumeric reads a mandatory environment variable holding a non-negative integer id.
func requireNumeric(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s environment variable is required", key)
	}
	if _, err := strconv.ParseUint(value, 10, 64); err != nil {
		return "", fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return value, nil
}

// splitList splits a comma separated value, dropping blank entries.
func splitList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
