// Package config provides configuration loading, merging, and validation
// facilities for the relay and its terminal client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (with defaults)
//  2. Command-line flags
//  3. JSON or TOML config file
//
// The main entry points are [GetStructuredConfig] for the relay and
// [GetClientConfig] for the terminal client.
package config
