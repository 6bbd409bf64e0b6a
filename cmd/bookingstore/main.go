package main

import (
	"os"

	"github.com/aklymenko/booking-store/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
