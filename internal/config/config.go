package config

import (
	"os"
	"strconv"
	"time"

	"github.com/matthewnoahkim/teamy-sub001/internal/credential"
)

type Config struct {
	LogLevel string

	// credential digest cost
	Argon2MemoryKiB uint32
	Argon2Time      uint32
	Argon2Threads   uint8

	// assessment action throttling
	RateLimitMax    int
	RateLimitWindow time.Duration
	RateLimitSweep  time.Duration
}

func FromEnv() Config {
	def := credential.DefaultParams()
	return Config{
		LogLevel:        getenv("LOG_LEVEL", "info"),
		Argon2MemoryKiB: uint32(getenvInt("ARGON2_MEMORY_KIB", int(def.Memory))),
		Argon2Time:      uint32(getenvInt("ARGON2_TIME", int(def.Time))),
		Argon2Threads:   uint8(getenvInt("ARGON2_THREADS", int(def.Threads))),
		RateLimitMax:    getenvInt("RATE_LIMIT_MAX", 30),
		RateLimitWindow: getenvDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitSweep:  getenvDuration("RATE_LIMIT_SWEEP", time.Hour),
	}
}

// CredentialParams maps the config onto credential cost parameters.
func (c Config) CredentialParams() credential.Params {
	return credential.Params{Memory: c.Argon2MemoryKiB, Time: c.Argon2Time, Threads: c.Argon2Threads}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
