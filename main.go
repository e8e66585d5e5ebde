package main

import "translation-server/internal/cli"

func main() {
	cli.Execute()
}
