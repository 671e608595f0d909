package main

import (
	"os"

	"github.com/jh3/course-sidebar/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
