package main

import "github.com/candytrack/candyd/internal/cli"

func main() {
	cli.Execute()
}
