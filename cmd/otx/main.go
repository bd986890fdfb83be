package main

import "github.com/OpenTraceLab/OpenTraceXZZ/cmd/otx/cmd"

func main() {
	cmd.Execute()
}
