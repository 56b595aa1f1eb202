package main

import "cloudscribe/cmd"

func main() {
	cmd.Execute()
}
