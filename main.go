package main

import "github.com/mordilloSan/stamplog/internal/cli"

// Usage:
//
//	stamplog log info "server started" 8080
//	stamplog --file ./app.log demo
func main() {
	cli.Execute()
}
