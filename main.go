package main

import "github.com/kasuboski/episodez/cmd"

func main() {
	cmd.Execute()
}
