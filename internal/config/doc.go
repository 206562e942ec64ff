// Package config loads realworld-tui configuration from environment
// variables, command-line flags, and an optional JSON file, merging them in
// that order through a small builder on top of dario.cat/mergo.
package config
