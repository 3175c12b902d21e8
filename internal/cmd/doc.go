// Package cmd provides the command-line interface implementation for djzip.
//
// This package contains all the subcommand implementations for the djzip CLI
// tool. It uses the Cobra library for command structure and Fang for beautiful
// styling, with Viper supplying optional config-file and environment defaults.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - create: Build a zip archive from files and directory trees
//   - seed: Generate randomized test file trees for exercising create
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The root command coordinates all
// subcommands; the actual archive writing lives in the djzip package.
package cmd
