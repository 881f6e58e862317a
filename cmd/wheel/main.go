package main

import "github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/cli"

func main() {
	cli.Execute()
}
