package main

import "github.com/user/video-cutter-cli/cmd"

func main() {
	cmd.Execute()
}
