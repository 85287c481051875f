package main

import "motionview/cmd"

func main() {
	cmd.Execute()
}
