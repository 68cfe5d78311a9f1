package main

import (
	"mlfq-sim/cmd"
)

func main() {
	cmd.Execute()
}
