// Package commands implements the compose command line: the interactive
// terminal UI, a headless replay of JSON events, and a one-shot
// sendability check.
package commands
