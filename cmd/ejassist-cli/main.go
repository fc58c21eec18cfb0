package main

import "ejassist-backend/cmd/ejassist-cli/commands"

func main() {
	commands.Execute()
}
