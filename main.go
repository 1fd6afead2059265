package main

import "ics-diff/cmd"

func main() {
	cmd.Execute()
}
