package main

import (
	"os"

	"github.com/overseer-monitoring/overseer-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
