package main

import "github.com/rybkr/diagoku/cmd"

func main() {
	cmd.Execute()
}
