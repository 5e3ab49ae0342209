package main

import "github.com/alexiusacademia/gocomb/cmd"

func main() {
	cmd.Execute()
}
