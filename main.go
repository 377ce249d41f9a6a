package main

import "github.com/dentio/dentio_backend/cmd"

func main() {
	cmd.Execute()
}
