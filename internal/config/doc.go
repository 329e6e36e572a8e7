// Package config defines the application's typed configuration and
// loads it from environment variables and an optional config file.
package config
