// Package config provides configuration loading, merging, and validation
// facilities for the relay.
//
// Configuration is assembled from multiple sources. For every field the
// first source that provides a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The upstream hosts and the OAuth client id are fixed constants and are
// not read from any source. The main entry point is [GetStructuredConfig].
package config
