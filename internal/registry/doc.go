// Package registry is the glue between mode definitions and Go code.
//
// Modules register a Factory for every mode type they provide. The registry
// also keeps the table of live instances and acts as the gamemode.Resolver
// handed to every handler it builds, so a handler can find its instance by id
// without holding on to it.
package registry
