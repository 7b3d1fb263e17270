package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"skinkit/internal/theme"
)

const (
	defaultHost               = "0.0.0.0"
	defaultPort               = 2323
	defaultHostKeyPath        = ".data/host_ed25519"
	defaultIdleTimeout        = 300 * time.Second
	defaultMaxSessions        = 32
	defaultRateLimitPerMinute = 30
	defaultRateBurst          = 5
	defaultVariant            = theme.VariantOffice
	minimumRateLimit          = 1
	maximumConfiguredSessions = 1024
)

// Config captures startup settings for the preview service.
type Config struct {
	Host               string
	Port               int
	HostKeyPath        string
	IdleTimeout        time.Duration
	MaxSessions        int
	RateLimitPerMinute int
	RateBurst          int
	Variant            theme.Variant
	SkinFile           string
	HTTPAddr           string
	LogLevel           log.Level
}

// Addr is the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadFromEnv loads runtime configuration from environment variables.
func LoadFromEnv() (Config, error) {
	host, err := readRequiredOrDefault("SKINKIT_SSH_HOST", defaultHost)
	if err != nil {
		return Config{}, err
	}

	port, err := readInt("SKINKIT_SSH_PORT", defaultPort, 1, 65535)
	if err != nil {
		return Config{}, err
	}

	hostKeyPath, err := readRequiredOrDefault("SKINKIT_SSH_HOST_KEY_PATH", defaultHostKeyPath)
	if err != nil {
		return Config{}, err
	}
	cleanHostKeyPath := filepath.Clean(hostKeyPath)
	if cleanHostKeyPath == "." {
		return Config{}, fmt.Errorf("SKINKIT_SSH_HOST_KEY_PATH must not resolve to current directory")
	}

	idleTimeout, err := readDuration("SKINKIT_SSH_IDLE_TIMEOUT", defaultIdleTimeout)
	if err != nil {
		return Config{}, err
	}

	maxSessions, err := readInt("SKINKIT_SSH_MAX_SESSIONS", defaultMaxSessions, 1, maximumConfiguredSessions)
	if err != nil {
		return Config{}, err
	}

	rateLimitPerMinute, err := readInt("SKINKIT_SSH_RATE_LIMIT_PER_MINUTE", defaultRateLimitPerMinute, minimumRateLimit, 10000)
	if err != nil {
		return Config{}, err
	}

	rateBurst, err := readInt("SKINKIT_SSH_RATE_BURST", defaultRateBurst, 1, 1000)
	if err != nil {
		return Config{}, err
	}

	variantName, err := readRequiredOrDefault("SKINKIT_THEME_VARIANT", string(defaultVariant))
	if err != nil {
		return Config{}, err
	}
	variant, err := theme.ParseVariant(variantName)
	if err != nil {
		return Config{}, fmt.Errorf("SKINKIT_THEME_VARIANT: %w", err)
	}

	skinFile := strings.TrimSpace(os.Getenv("SKINKIT_SKIN_FILE"))
	if skinFile != "" {
		skinFile = filepath.Clean(skinFile)
	}

	// Empty leaves the JSON skin API off.
	httpAddr := strings.TrimSpace(os.Getenv("SKINKIT_HTTP_ADDR"))
	if httpAddr != "" {
		if _, _, err := net.SplitHostPort(httpAddr); err != nil {
			return Config{}, fmt.Errorf("SKINKIT_HTTP_ADDR must be host:port: %w", err)
		}
	}

	level, err := readLevel("LOG_LEVEL", log.InfoLevel)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Host:               host,
		Port:               port,
		HostKeyPath:        cleanHostKeyPath,
		IdleTimeout:        idleTimeout,
		MaxSessions:        maxSessions,
		RateLimitPerMinute: rateLimitPerMinute,
		RateBurst:          rateBurst,
		Variant:            variant,
		SkinFile:           skinFile,
		HTTPAddr:           httpAddr,
		LogLevel:           level,
	}, nil
}

func readRequiredOrDefault(key, fallback string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%s must not be empty", key)
	}

	return raw, nil
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}

	return parsed, nil
}

func readDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func readLevel(key string, fallback log.Level) (log.Level, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}

	level, err := log.ParseLevel(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be a log level: %w", key, err)
	}
	return level, nil
}
