package main

import "repomap/internal/cli"

func main() {
	cli.Execute()
}
