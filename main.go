// Package main provides the entry point for the mosaic CLI.
package main

import (
	"log"

	"tetris-mosaic/cmd"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cmd.Execute()
}
