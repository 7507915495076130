package main

import (
	"errors"
	"log"
	"os"

	"github.com/BestDev/unreal-blueprint-mcp/helper"
)

func main() {
	err := helper.Run(os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, helper.ErrFailed):
		os.Exit(1)
	default:
		log.Fatal(err)
	}
}
