package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	metrics, err := loadMetricsConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Log: logCfg, Metrics: metrics}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// loadServerConfig 解析服务器监听地址与优雅退出超时。
func loadServerConfig() (ServerConfig, error) {
	addr, err := parseAddr(strings.TrimSpace(os.Getenv("PORT")))
	if err != nil {
		return ServerConfig{}, err
	}

	shutdownSeconds := 10
	if override, err := parseOptionalIntEnv("SHUTDOWN_TIMEOUT_SECONDS"); err != nil {
		return ServerConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return ServerConfig{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT_SECONDS value %d: must be at least 1", *override)
		}
		shutdownSeconds = *override
	}

	return ServerConfig{
		Addr:            addr,
		ShutdownTimeout: time.Duration(shutdownSeconds) * time.Second,
	}, nil
}

func parseAddr(port string) (string, error) {
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	return ":" + port, nil
}

// LogConfig 描述日志级别与输出格式。
type LogConfig struct {
	Level logrus.Level
	JSON  bool
}

func loadLogConfig() (LogConfig, error) {
	rawLevel := getEnvOrDefault("LOG_LEVEL", "info")
	level, err := logrus.ParseLevel(rawLevel)
	if err != nil {
		return LogConfig{}, fmt.Errorf("invalid LOG_LEVEL value %q: %w", rawLevel, err)
	}

	format := strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text"))
	switch format {
	case "text", "json":
	default:
		return LogConfig{}, fmt.Errorf("invalid LOG_FORMAT value %q: expected text or json", format)
	}

	return LogConfig{Level: level, JSON: format == "json"}, nil
}

// MetricsConfig 描述 Prometheus 指标暴露配置。
type MetricsConfig struct {
	Enabled bool
	Path    string
}

func loadMetricsConfig() (MetricsConfig, error) {
	enabled, err := parseBoolEnv("METRICS_ENABLED", true)
	if err != nil {
		return MetricsConfig{}, err
	}

	path := getEnvOrDefault("METRICS_PATH", "/metrics")
	if !strings.HasPrefix(path, "/") {
		return MetricsConfig{}, fmt.Errorf("invalid METRICS_PATH value %q: must start with /", path)
	}

	return MetricsConfig{Enabled: enabled, Path: path}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
