package main

import cmd "github.com/kerbaras/rickmorty/cmd/rickmorty"

func main() {
	cmd.Execute()
}
