package main

import "photohunter-cli/commands"

func main() {
	commands.Execute()
}
