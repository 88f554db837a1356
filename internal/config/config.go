package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"rwsch/internal/forecast"
	"rwsch/internal/schedule"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath            string
	LogDir              string
	ItemsDir            string
	Seed                uint64
	StrategyOrder       []schedule.Tier
	Samples             int
	Concurrency         int
	EnableMermaidCharts bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve Data Paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	order, err := schedule.ParseTiers(getEnv("RWSCH_STRATEGY_ORDER", ""))
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		order = schedule.DefaultTiers
	}

	var seed uint64
	if raw := getEnv("RWSCH_SEED", ""); raw != "" {
		seed, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RWSCH_SEED %q: %w", raw, err)
		}
	}

	samples := min(max(getEnvInt("RWSCH_SAMPLES", 1), 1), forecast.MaxSamples)

	cfg := &AppConfig{
		DataPath:            dataPath,
		LogDir:              filepath.Join(dataPath, "logs"),
		ItemsDir:            filepath.Join(dataPath, "items"),
		Seed:                seed,
		StrategyOrder:       order,
		Samples:             samples,
		Concurrency:         getEnvInt("RWSCH_CONCURRENCY", 4),
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
	}

	return cfg, nil
}

// Selector builds a strategy selector honouring the configured priority order.
func (c *AppConfig) Selector() *schedule.Selector {
	return schedule.NewSelector(schedule.Strategies(c.StrategyOrder)...)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
