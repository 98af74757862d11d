package main

import "roommind/cmd/roommind-cli/cmd"

func main() {
	cmd.Execute()
}
