package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// RootFileEnv points at the root configuration file, .env or .yaml
const RootFileEnv = "GEVEZE_CONFIG_FILE"

var defaultRootFiles = []string{".env", "geveze.yaml", "geveze.yml"}

// loadRootFile copies the root file values into the process environment without
// overwriting anything already set there, so envconfig sees env > file > default.
func loadRootFile() error {
	if path := os.Getenv(RootFileEnv); path != "" {
		values, err := ReadRootFile(path)
		if err != nil {
			return err
		}
		return applyMissing(values)
	}

	for _, path := range defaultRootFiles {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		values, err := ReadRootFile(path)
		if err != nil {
			return err
		}
		if err := applyMissing(values); err != nil {
			return err
		}
	}
	return nil
}

// ReadRootFile reads KEY=value pairs from a dotenv file, or a flat KEY: value
// mapping from a YAML file
func ReadRootFile(path string) (map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		bts, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		var raw map[string]interface{}
		if err := yaml.Unmarshal(bts, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		values := make(map[string]string, len(raw))
		for k, v := range raw {
			switch val := v.(type) {
			case nil:
				continue
			case []interface{}:
				parts := make([]string, 0, len(val))
				for _, p := range val {
					parts = append(parts, fmt.Sprint(p))
				}
				values[k] = strings.Join(parts, ",")
			case map[string]interface{}:
				return nil, fmt.Errorf("config file %s: key %s must be a scalar or a list", path, k)
			default:
				values[k] = fmt.Sprint(val)
			}
		}
		return values, nil
	default:
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		return values, nil
	}
}

func applyMissing(values map[string]string) error {
	for k, v := range values {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}
