// Package config provides configuration loading, merging, and validation
// facilities for the scholarship-advisor service.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones; defaults fill what is left):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
