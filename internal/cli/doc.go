// Package cli parses the host's command-line arguments into an app.Config.
package cli
