// Package main provides the djzip command-line interface.
//
// djzip is a streaming zip archive builder. It serializes files and
// directory trees into standard zip archives, writing each entry to the
// output as it is added instead of assembling the archive in memory.
//
// The main binary supports multiple subcommands:
//   - create: Build a zip archive from files and directory trees
//   - seed: Generate randomized test file trees for exercising create
package main
