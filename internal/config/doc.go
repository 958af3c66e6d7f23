// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the merged raw view
// and [GetPOSConfig] for the terminal-specific configuration.
package config
