// Package config resolves the runnable binary's flat configuration
// surface: listen addresses and on-disk paths, each overridable by flag
// or LEDGERDB_* environment variable. It intentionally stays a plain
// struct literal, matching the teacher's cmd/keyp/main.go — the surface
// here (two addresses, two paths) doesn't earn a flag-parsing framework.
package config

import (
	"flag"
	"os"
)

type Config struct {
	Address      string
	AdminAddress string
	DataDir      string
	LogPath      string
}

func Load() Config {
	cfg := Config{
		Address:      getEnvWithDefault("LEDGERDB_ADDRESS", "127.0.0.1:9090"),
		AdminAddress: getEnvWithDefault("LEDGERDB_ADMIN_ADDRESS", "127.0.0.1:7712"),
		DataDir:      getEnvWithDefault("LEDGERDB_DATA_DIR", "./data"),
		LogPath:      getEnvWithDefault("LEDGERDB_LOG_PATH", ""),
	}

	flag.StringVar(&cfg.Address, "address", cfg.Address, "core protocol listen address")
	flag.StringVar(&cfg.AdminAddress, "admin-address", cfg.AdminAddress, "admin RESP listen address")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding the command log")
	flag.StringVar(&cfg.LogPath, "log-path", cfg.LogPath, "path to the command log file, used as given (default: dump.aof inside data-dir)")
	flag.Parse()

	return cfg
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if isEmpty(value) {
		return defaultValue
	}
	return value
}

func isEmpty(data string) bool {
	return len(data) == 0
}
