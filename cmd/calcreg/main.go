package main

import (
	"github.com/NVIDIA/calculator-registry/pkg/cli"
)

func main() {
	cli.Execute()
}
