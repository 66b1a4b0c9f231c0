// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. No file at all: env vars and the env-default values below.
//
// Source 3 matters for a console tool — `students-cli` with no
// arguments should just work against ./students.txt, without the user
// writing a YAML file first.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage driver names accepted in StorageDriver.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config is the root configuration structure. Every field maps to a key
// in the YAML file AND can be overridden by the corresponding
// environment variable (env:"...").
type Config struct {
	// Env controls the log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// StorageDriver selects the persistence backend: "file" for the
	// pipe-delimited text file, "sqlite" for the embedded database.
	StorageDriver string `yaml:"storage_driver" env:"STORAGE_DRIVER" env-default:"file"`

	// StoragePath is the filesystem path of the backing store — the
	// .txt file for the file driver, the .db file for sqlite.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"students.txt"`
}

// MustLoad reads, validates, and returns the application config.
//
// The "Must" prefix follows the Go convention: this function is allowed
// to terminate the process on failure, so if it returns, the config is
// valid and callers never check an error.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		flagPath := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flagPath
	}

	// No config file requested: fall back to environment variables and
	// the env-default values declared on the struct.
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}
		return &cfg
	}

	// A config file was named explicitly — then it has to exist.
	// Checking with os.Stat first gives a clear message instead of a
	// cryptic "open: no such file" from the YAML parser.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
