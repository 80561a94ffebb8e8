package main

import "github.com/CaioMS2000/github-activity/cmd"

func main() {
	cmd.Execute()
}
