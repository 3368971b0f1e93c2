// cmd/blastviz/main.go
package main

import (
	"moop/internal/appshell"
	"moop/internal/reportapp"
)

func main() { appshell.Main(reportapp.RunContext) }
