package main

import "github.com/coreentropy/csprng/cmd/csprngctl/cmd"

func main() {
	cmd.Execute()
}
