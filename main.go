package main

import "github.com/gmh5225/ollama-hunter/cmd"

func main() {
	cmd.Execute()
}
