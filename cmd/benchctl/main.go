package main

import "github.com/benchkit/benchctl/cmd/benchctl/internal"

func main() {
	internal.Execute()
}
