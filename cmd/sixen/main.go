package main

import (
	"github.com/Cireo/sixen/internal/cli"
)

func main() {
	cli.Execute()
}
