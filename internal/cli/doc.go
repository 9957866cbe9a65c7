// Package cli defines the Cobra command tree for the installer. Running the
// root command with no subcommand performs the install; the remaining files
// each register one subcommand (platform, doctor, config, version).
// Commands delegate to internal packages for the actual work and own the
// single error boundary that turns a failure into exit status 1.
package cli
