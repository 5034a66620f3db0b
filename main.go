package main

import "github.com/notargets/gaussfit/cmd"

func main() {
	cmd.Execute()
}
