package main

import "github.com/catclient/catclient/cmd"

func main() {
	cmd.Execute()
}
