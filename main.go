// Package main is the entry point for the arxml-viewer command line
// tool: a parser, validator and model exporter for AUTOSAR XML files.
package main

import "arxml-viewer/internal/cli"

func main() {
	cli.Execute()
}
