// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml, overridden by DETOURS_* environment
// variables (a .env file is honoured) and validated using struct tags. The
// package also parses the query string of board requests.
package config
