package main

import "github.com/floatkit/floatkit/cmd"

func main() {
	cmd.Execute()
}
