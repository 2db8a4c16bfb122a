package main

import "github.com/black-desk/filemon/cmd/filemon/cmd"

func main() {
	cmd.Execute()
}
