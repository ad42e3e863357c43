package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/parser"
)

func main() {
	param, err := parser.InitServerParam(os.Args[1:])
	if err != nil {
		log.Printf("Failed to launch minigrep server: %q", err.Error())
		os.Exit(1)
	}

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := appmode.RunServer(ctx, stop, param); err != nil {
		log.Printf("Search server stopped: %v", err)
		stop()
		os.Exit(1)
	}
}
