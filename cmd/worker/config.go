package main

import (
	"log"

	"skateshop-backend/internal/shared/utils"
)

// Config holds all configuration for the worker
type Config struct {
	RedisAddr       string
	HealthCheckPort string
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	cfg := &Config{
		RedisAddr:       utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		HealthCheckPort: utils.GetEnvVariable("WORKER_HEALTH_PORT", "9999"),
	}

	log.Printf("[Config] Redis: %s", cfg.RedisAddr)

	return cfg
}
