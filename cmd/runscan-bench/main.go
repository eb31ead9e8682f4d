package main

import (
	"runscan/internal/appshell"
	"runscan/internal/benchapp"
)

func main() {
	appshell.Main(benchapp.RunContext)
}
