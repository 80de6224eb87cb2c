// Package config loads typed configuration from environment variables.
//
// It uses github.com/caarlos0/env for struct-tag parsing and
// github.com/joho/godotenv for .env files. Each configuration type is parsed
// once and cached:
//
//	type Config struct {
//		Dir string `env:"FORMRULES_RULES_DIR" envDefault:"./rules"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// LoadEnv reads additional env files (for example per-environment overrides)
// and clears the cache.
package config
