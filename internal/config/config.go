package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Env           string
	LogPrefix     string
	LogTimestamps bool
}

// LoadFromEnv is intentionally simple; the binary takes no flags.
func LoadFromEnv() (Config, error) {
	ts, err := getenvBool("DELEGATES_LOG_TIMESTAMPS", false)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Env:           getenv("DELEGATES_ENV", "local"),
		LogPrefix:     getenv("DELEGATES_LOG_PREFIX", "delegates: "),
		LogTimestamps: ts,
	}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", k, err)
	}
	return b, nil
}
