package main

import "github.com/govalues/datatype/internal/cli"

func main() {
	cli.Execute()
}
