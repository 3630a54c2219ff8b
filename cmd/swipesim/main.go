package main

import (
	"os"

	"github.com/go-drift/swipe/cmd/swipesim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
