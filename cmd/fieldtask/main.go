package main

import (
	"os"

	"fieldtask/cmd/fieldtask/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
