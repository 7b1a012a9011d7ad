package main

import "github.com/tara-vision/taraplan/cmd"

func main() {
	cmd.Execute()
}
