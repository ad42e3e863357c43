package appmode

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
)

const shutdownTimeout = 5 * time.Second

// RunServer serves search requests until ctx is done. A listener failure calls stop
// and is returned after the shutdown.
func RunServer(ctx context.Context, stop context.CancelFunc, sp *model.ServerParam) error {
	srv := transport.NewServer(sp.Address, processor.Processor{})
	serveErr := make(chan error, 1)

	go func() {
		log.Printf("Search server running on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			stop()
			return
		}
		log.Println("Server gracefully stopping...")
	}()

	<-ctx.Done()

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown search server %q correctly: %q", sp.Address, err.Error())
	}

	select {
	case err := <-serveErr:
		return err
	default:
		log.Printf("Search server %q is closed.", sp.Address)
		return nil
	}
}
