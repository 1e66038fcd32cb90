package main

import (
	"os"

	"stoik.com/emailscore/cmd/scorectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
