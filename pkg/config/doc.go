// Package config provides the configuration types and loading utilities
// shared by services embedding fault-lib.
//
// Usage:
//
//	import "github.com/Goden-Gun/fault-lib/pkg/config"
//
//	type MyConfig struct {
//	    App      config.AppConfig      `yaml:"app" mapstructure:"app"`
//	    Log      config.LogConfig      `yaml:"log" mapstructure:"log"`
//	    Fault    config.FaultConfig    `yaml:"fault" mapstructure:"fault"`
//	    FaultLog config.FaultLogConfig `yaml:"fault_log" mapstructure:"fault_log"`
//	    Alert    config.AlertConfig    `yaml:"alert" mapstructure:"alert"`
//	    // ... service-specific configs
//	}
//
//	func LoadMyConfig() (*MyConfig, error) {
//	    cfg := &MyConfig{}
//	    if err := config.LoadConfig(cfg); err != nil {
//	        return nil, err
//	    }
//	    cfg.App.Env = config.GetEnv()
//	    return cfg, nil
//	}
package config
