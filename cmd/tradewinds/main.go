package main

import "github.com/saltroad/tradewinds/internal/adapters/cli"

func main() {
	cli.Execute()
}
