package main

import "github.com/inference-gateway/coordpick/cmd"

func main() {
	cmd.Execute()
}
