package main

import "github.com/gaurav-prasanna/wikipage/cmd"

func main() {
	cmd.Execute()
}
