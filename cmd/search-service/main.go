package main

import (
	"os"

	"github.com/doadrianh/bigspring-ai-take-home/searchservice"
)

func main() {
	if err := searchservice.Run(); err != nil {
		os.Exit(1)
	}
}
