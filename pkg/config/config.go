package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// ConstantConfigFilename is the optional env-style config file read on startup.
	ConstantConfigFilename = "/etc/default/dereplicator-adapter"

	// ConstantResultFilename is the file Dereplicator writes into its output
	// directory on success. Nothing else in that directory is used.
	ConstantResultFilename = "significant_matches.tsv"

	// DefaultExecutable is the Python wrapper shipped with NPDtools. It is
	// looked up on PATH unless an explicit path is given.
	DefaultExecutable = "dereplicator.py"

	// DefaultTempPrefix names the per-run working directory.
	DefaultTempPrefix = "dereplicator-"

	// logger
	DefaultLogLevel = "info"
	DefaultLogFile  = ""
	DefaultDebug    = false
)

// Config holds the settings that can come from the environment or the
// config file. Command line flags override every field.
type Config struct {
	Executable string
	LogLevel   string
	LogFile    string
	// TempDir is the parent of the per-run working directory; empty means os.TempDir().
	TempDir string
	Debug   bool
}

func Load(filename string) *Config {
	if filename == "" {
		filename = ConstantConfigFilename
	}
	_ = godotenv.Load(filename)

	return &Config{
		Executable: getEnv("DRA_EXECUTABLE", DefaultExecutable),
		LogLevel:   getEnv("DRA_LOG_LEVEL", DefaultLogLevel),
		LogFile:    getEnv("DRA_LOG_FILE", DefaultLogFile),
		TempDir:    getEnv("DRA_TMPDIR", ""),
		Debug:      getEnvBool("DRA_DEBUG", DefaultDebug),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
