// Package cli wires the tangocho subcommands together: flag definitions,
// cobra command construction, viper configuration loading and the run
// functions that call into the domain packages.
package cli
