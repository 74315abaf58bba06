package main

import (
	"os"
	_ "time/tzdata"

	"github.com/cmlabs-hris/working-date-go/cmd/workdate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
