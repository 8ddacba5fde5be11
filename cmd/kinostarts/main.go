package main

import "github.com/kinotools/kinostarts/internal/cli"

func main() {
	cli.Execute()
}
