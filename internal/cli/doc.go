// Package cli is responsible for parsing command-line arguments and
// MODEHOOKS_* environment variables, validating user input, and handling
// process-level concerns like exit codes. It translates them into the
// application's internal configuration.
package cli
