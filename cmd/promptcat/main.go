package main

import "github.com/goliatone/go-promptcat/internal/cli"

func main() {
	cli.Execute()
}
