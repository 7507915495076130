package main

import (
	"log"
	"os"

	"github.com/BestDev/unreal-blueprint-mcp/bridge"
)

func main() {
	if err := bridge.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
