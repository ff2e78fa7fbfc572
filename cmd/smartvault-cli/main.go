package main

import "smartvault/cmd/smartvault-cli/cmd"

func main() {
	cmd.Execute()
}
