// Package config provides configuration loading, merging, and validation
// facilities for the resistance-accounts server and client.
//
// Configuration is assembled from multiple sources; for every field the
// first source holding a non-zero value wins:
//  1. Environment variables (a .env file in the working directory is loaded
//     into the environment first, without overriding real variables)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
