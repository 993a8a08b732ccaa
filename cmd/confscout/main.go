package main

import "github.com/confscout/confscout/internal/cli"

func main() {
	cli.Execute()
}
