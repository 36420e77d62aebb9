package main

import "object-probe/cmd"

func main() {
	cmd.Execute()
}
