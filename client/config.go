package client

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction = "prod"
	EnvTest       = "test"

	hostProduction = "https://live.fintavapay.com/api/dev"
	hostTest       = "https://api.fintavapay.com/api/dev"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "fintava-go/1.0"
)

type Config struct {
	SecretKey   string
	Environment string
	Host        string
	Timeout     time.Duration
	UserAgent   string
}

// NewConfig reads FINTAVA_* variables, loading a .env file first when one
// exists. Host is resolved from Environment unless FINTAVA_HOST overrides it.
func NewConfig() *Config {
	godotenv.Load()
	conf := &Config{
		SecretKey:   envString("FINTAVA_SECRET_KEY", ""),
		Environment: envString("FINTAVA_ENV", EnvTest),
		Timeout:     envDuration("FINTAVA_TIMEOUT", defaultTimeout),
		UserAgent:   envString("FINTAVA_USER_AGENT", defaultUserAgent),
	}
	conf.Host = envString("FINTAVA_HOST", HostFor(conf.Environment))
	return conf
}

// HostFor maps an environment tag to its base URL. Anything other than
// prod resolves to the test host.
func HostFor(environment string) string {
	if environment == EnvProduction {
		return hostProduction
	}
	return hostTest
}

func envString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
