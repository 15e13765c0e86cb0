package main

import "cognet/cmd/cognet-cli/cmd"

func main() {
	cmd.Execute()
}
