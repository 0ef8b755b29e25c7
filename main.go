package main

import (
	"os"

	"github.com/arnavsud/stethoquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
