// Package main provides the entry point for the muscle-overlay command.
package main

import "muscle-overlay/cmd"

func main() {
	cmd.Execute()
}
