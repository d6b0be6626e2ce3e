// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv), maps to Config struct via go-simpler/env struct tags.
// Every field has a default, so an empty environment yields the local demo setup
// on 127.0.0.1:8080.
package config
