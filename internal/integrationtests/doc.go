// Package integrationtests drives the whole application, mode files to final
// settings output, through the same path the CLI uses.
package integrationtests
