package main

import (
	"runscan/internal/app"
	"runscan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
