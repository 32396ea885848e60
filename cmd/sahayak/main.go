package main

import "github.com/sahayakai/sahayak/cmd/sahayak/cli"

func main() {
	cli.Execute()
}
