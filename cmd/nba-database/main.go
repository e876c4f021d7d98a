package main

import "github.com/zjtippetts/NBA-Database/internal/cli"

func main() {
	cli.Execute()
}
