// cmd/trfind/main.go
package main

import (
	"trfind/internal/app"
	"trfind/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
