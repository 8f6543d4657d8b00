// Package config manages user-level settings stored at ~/.exemplars/config.yaml.
// Values are layered with viper: defaults, then the config file, then
// EXEMPLARS_* environment variables, then command-line flags.
package config
