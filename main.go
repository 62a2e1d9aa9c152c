package main

import "github.com/Hashim-Bhagad/FitFork/cmd"

func main() {
	cmd.Execute()
}
