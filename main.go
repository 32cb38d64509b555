package main

import "github.com/brogergvhs/novelfetch/cmd"

func main() {
	cmd.Execute()
}
