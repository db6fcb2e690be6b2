package main

import (
	"os"

	"github.com/atik-theme/atik-assistant/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
