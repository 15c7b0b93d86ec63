package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates application configuration values loaded from environment
// variables. MongoDB and Kafka are optional: without MONGO_URI the service
// runs on in-memory stores, without KAFKA_BROKERS no event consumer starts.
type Config struct {
	Env              string
	HTTPAddr         string
	MongoURI         string
	MongoDB          string
	KafkaBrokers     []string
	KafkaGroupID     string
	HotelEventsTopic string
	BatchLimit       int
	CacheTTL         time.Duration
	YearlyWindow     []int
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getEnv("MONGO_DB", "chillstay"),
		KafkaGroupID:     getEnv("KAFKA_GROUP_ID", "chillstay-stats"),
		HotelEventsTopic: getEnv("HOTEL_EVENTS_TOPIC", "hotel-events"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	limit, err := parseIntEnv("BATCH_LIMIT", 10)
	if err != nil {
		return Config{}, err
	}
	if limit < 1 {
		return Config{}, fmt.Errorf("BATCH_LIMIT must be positive, got %d", limit)
	}
	cfg.BatchLimit = limit

	ttl, err := parseDurationEnv("CACHE_TTL", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.CacheTTL = ttl

	window := getEnv("YEARLY_WINDOW", "")
	if window != "" {
		for _, raw := range strings.Split(window, ",") {
			val := strings.TrimSpace(raw)
			if val == "" {
				continue
			}
			year, err := strconv.Atoi(val)
			if err != nil {
				return Config{}, fmt.Errorf("invalid YEARLY_WINDOW component %q: %w", raw, err)
			}
			cfg.YearlyWindow = append(cfg.YearlyWindow, year)
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s integer: %w", key, err)
	}
	return n, nil
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}
