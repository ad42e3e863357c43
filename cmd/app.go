package main

import (
	"fmt"
	"log"
	"os"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/parser"
)

func main() {
	// диагностика - одной строкой в stderr, без даты
	log.SetFlags(0)

	cfg, err := parser.NewConfig(os.Args)
	if err != nil {
		log.Printf("Problem parsing arguments: %v", err)
		os.Exit(1)
	}

	res, err := appmode.Run(cfg)
	if err != nil {
		log.Printf("Application error: %v", err)
		os.Exit(1)
	}

	for _, line := range res.Output {
		fmt.Println(line)
	}
}
