package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// 聚合器命令，参数固定为 articles --all
	AggregatorCmd string
	OutputPath    string

	AppPort  string
	CronSpec string

	// 为空时不启用
	PostgresDSN string
	RedisAddr   string
}

func Load() *Config {
	cfg := &Config{
		AggregatorCmd: getEnv("AGGREGATOR_CMD", "blogwatcher"),
		OutputPath:    getEnv("OUTPUT_PATH", DefaultOutputPath()),
		AppPort:       getEnv("APP_PORT", "9000"),
		CronSpec:      getEnv("CRON_SPEC", "0 * * * *"),
		PostgresDSN:   getEnv("POSTGRES_DSN", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
	}

	log.Printf("config loaded: aggregator=%s output=%s port=%s cron=%s db=%t redis=%t",
		cfg.AggregatorCmd, cfg.OutputPath, cfg.AppPort, cfg.CronSpec, cfg.PostgresDSN != "", cfg.RedisAddr != "")
	return cfg
}

// DefaultOutputPath 安装目录旁的 public/news.json：<可执行文件目录>/../public/news.json
func DefaultOutputPath() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("public", "news.json")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", "public", "news.json")
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
