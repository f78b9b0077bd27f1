package main

import (
	"os"

	"github.com/mmynk/flightlog/internal/cli"
)

const appVersion = "0.1.0"

func main() {
	os.Exit(cli.Execute(appVersion))
}
