package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/marcbeltman/nocache-server/pkg/manager"
)

//DevServer stores info about settings
type DevServer struct {
	Port    string
	Address string
	Manager *manager.Manager
	// Out receives the per-request log lines. Defaults to os.Stdout.
	Out io.Writer
}

// Start serves files until ctx is canceled, then drains in-flight
// requests and returns. A canceled ctx is a clean stop, not an error.
func (s *DevServer) Start(ctx context.Context) error {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}

	addr := net.JoinHostPort(s.Address, s.Port)
	l, err := Listen(addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router(out),
	}

	errorChan := make(chan error, 1)
	go func() {
		errorChan <- srv.Serve(l)
	}()

	select {
	case err := <-errorChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
		_ = srv.Close()
	}
	return nil
}
