package main

import "marknote/cmd/marknote-cli/cmd"

func main() {
	cmd.Execute()
}
