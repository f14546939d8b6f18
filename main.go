package main

import "github.com/marcbeltman/nocache-server/cmd"

func main() {
	cmd.Execute()
}
