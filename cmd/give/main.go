package main

import "github.com/givefund/give/cmd/give/cmd"

func main() {
	cmd.Execute()
}
