package main

import (
	"os"

	"github.com/WKDev/ModOne-sub002/cmd/modone/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
