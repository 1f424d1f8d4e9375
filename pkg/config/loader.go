package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadOptions controls config loading.
type LoadOptions struct {
	ConfigPath    string // config file directory, default "./configs"
	EnvPrefix     string // env var prefix for viper.AutomaticEnv
	AllowNoConfig bool   // allow running on env vars alone
}

// LoadConfig loads the service configuration into cfg, which must be a
// pointer to a config struct. An optional .env file is applied first, then
// configs/config_{APP_ENV}.yaml, then prefixed environment variables.
func LoadConfig(cfg interface{}, opts ...LoadOptions) error {
	opt := LoadOptions{ConfigPath: "./configs"}
	if len(opts) > 0 {
		opt = opts[0]
	}

	envFile := os.Getenv("ENV_FILE")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("load %s failed: %w", envFile, err)
			}
		}
	} else {
		if err := godotenv.Load(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("load .env failed: %w", err)
			}
		}
	}

	viper.SetConfigName(fmt.Sprintf("config_%s", GetEnv()))
	viper.SetConfigType("yaml")
	viper.AddConfigPath(opt.ConfigPath)

	if opt.EnvPrefix != "" {
		viper.SetEnvPrefix(opt.EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !(errors.As(err, &notFound) && opt.AllowNoConfig) {
			return fmt.Errorf("read config failed: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config failed: %w", err)
	}

	return nil
}

// GetEnv returns the current environment, default "dev".
func GetEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		return "dev"
	}
	return env
}

// VerboseEnabled resolves the response verbosity mode. The FAULT_VERBOSE
// environment variable, when set, wins over the config file.
func (c FaultConfig) VerboseEnabled() bool {
	if v := os.Getenv("FAULT_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return c.Verbose
}
