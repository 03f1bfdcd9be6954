package main

import "github.com/melkeydev/sqltypes/cli"

func main() {
	cli.Execute()
}
