package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Load assembles the configuration from defaults, an optional YAML/JSON file,
// an optional .env file and the process environment, in increasing priority.
// Missing files are not an error. The returned Config must not be mutated.
func Load(configPath, envFile string) (*Config, error) {
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}

	fc := defaultFileConfig()
	if err := readFileConfig(configPath, fc); err != nil {
		return nil, err
	}
	mergeEnvVars(fc)

	cfg := fileConfigToConfig(fc)
	result := cfg.Validate()
	for _, w := range result.Warnings {
		log.WithField("field", w.Field).Warn(w.Message)
	}
	if !result.Valid {
		return nil, result.Err()
	}
	return cfg, nil
}

// loadDotEnv populates unset environment variables from envFile.
// Variables already present in the process environment win.
func loadDotEnv(envFile string) error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}
	log.WithField("path", envFile).Debug("environment file loaded")
	return nil
}

func readFileConfig(path string, fc *FileConfig) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.WithField("path", path).Debug("config file not found; using defaults and environment")
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, fc); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, fc); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	log.WithField("path", path).Info("configuration loaded")
	return nil
}
