// Package config loads restkit configuration from YAML files and the
// environment.
//
// Load resolves a config.yml and an optional .env file, reads them with
// viper, applies RESTKIT_-prefixed environment overrides, and unmarshals
// the result into the target struct:
//
//	var cfg struct {
//	    Client  httpclient.Config `mapstructure:"client"`
//	    Logging logger.Config     `mapstructure:"logging"`
//	}
//	err := config.Load("myapp", &cfg)
package config
