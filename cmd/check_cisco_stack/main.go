package main

import "github.com/jamiereid/check-cisco-stack/cmd/check_cisco_stack/cmd"

func main() {
	cmd.Execute()
}
