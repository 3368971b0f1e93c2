// cmd/blastviz-align/main.go
package main

import (
	"moop/internal/alignapp"
	"moop/internal/appshell"
)

func main() { appshell.Main(alignapp.RunContext) }
