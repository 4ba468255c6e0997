package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "PULSAR"

// LoadEnvFile loads environment variables from a .env file if it exists.
// A missing file is not an error; a present but unreadable one is.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load env file: %w", err)
	}
	return nil
}

// Load reads the YAML file at path, applies PULSAR_-prefixed environment
// overrides, and unmarshals the result into cfg. An empty path skips the
// file and uses environment values only.
func Load(path string, cfg any) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	// AutomaticEnv only resolves keys viper already knows about; bind the
	// keys present in the file plus the well-known ones explicitly.
	for _, key := range knownKeys(v) {
		_ = v.BindEnv(key)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	return nil
}

// knownKeys merges the keys read from the file with the keys every client
// config has, so env-only operation still works.
func knownKeys(v *viper.Viper) []string {
	seen := map[string]bool{}
	keys := v.AllKeys()
	for _, k := range keys {
		seen[k] = true
	}
	for _, k := range []string{
		"service_url",
		"operation_timeout",
		"authentication.plugin",
		"logging.level",
		"logging.format",
		"logging.output",
	} {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	return keys
}
