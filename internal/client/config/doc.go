// Package config handles configuration for the BookSwap CLI, including
// defaults, JSON overlay, environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
package config
