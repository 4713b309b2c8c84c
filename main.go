package main

import "github.com/gaurav-prasanna/periodicdata/cmd"

func main() {
	cmd.Execute()
}
