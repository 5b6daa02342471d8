// cmd/custpdf/main.go
package main

import (
	"custpdf/internal/app"
	"custpdf/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
