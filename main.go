package main

import "github.com/tranvictor/addressbook/cmd"

func main() {
	cmd.Execute()
}
