// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the load/run lifecycle of the game modes it
// hosts, decoupled from any specific entrypoint like a CLI.
package app
