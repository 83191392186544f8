package main

import "prefix-list-updater/cmd"

func main() {
	cmd.Execute()
}
