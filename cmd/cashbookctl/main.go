package main

import "github.com/tresahq/cashbook_cli/internal/cli"

func main() {
	cli.Execute()
}
