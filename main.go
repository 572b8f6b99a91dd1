package main

import (
	"os"

	"github.com/xcelliti/website/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
