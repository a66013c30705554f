package main

import "github.com/agentic-research/navtree/cmd"

func main() {
	cmd.Execute()
}
