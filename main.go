// Package main is the entry point for the catchup CLI.
package main

import "catchup.dev/pkg/catchup/cmd"

func main() {
	cmd.Execute()
}
