package main

import "github.com/inovacc/givr/cmd"

func main() {
	cmd.Execute()
}
