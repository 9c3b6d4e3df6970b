package main

import "github.com/bankpilot/bankpilot/cmd"

func main() {
	cmd.Execute()
}
