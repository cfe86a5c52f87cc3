// cmd/nanocount/main.go
package main

import (
	"nanocount/internal/app"
	"nanocount/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
