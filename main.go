package main

import "github.com/clove-lang/clove/cmd"

func main() {
	cmd.Execute()
}
