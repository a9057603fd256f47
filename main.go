package main

import "github.com/steppi/scribe/cmd"

func main() {
	cmd.Execute()
}
