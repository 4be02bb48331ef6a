// main is the entry point for the stackrank CLI.
package main

import (
	"github.com/huangsam/stackrank/cmd"
	"github.com/huangsam/stackrank/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot execute command", err)
	}
}
