// Package cli parses command-line arguments into an app.Config, reporting
// usage and validation failures through ExitError exit codes.
package cli
