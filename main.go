package main

import "github.com/athahersirnaik/json-conditions/cmd"

func main() {
	cmd.Execute()
}
