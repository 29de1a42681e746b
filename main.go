package main

import "github.com/papapumpkin/roster/cmd"

func main() {
	cmd.Execute()
}
