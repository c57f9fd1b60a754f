package main

import (
	"os"

	"ntpmon/internal/commands"
	"ntpmon/internal/config"
)

func main() {
	// .env in the working directory can provide ${VAR} values used by a
	// config file.
	config.LoadEnv()

	if err := commands.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
