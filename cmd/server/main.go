// Command server runs the xploar API server.
//
// Configuration comes from CONFIG_PATH (YAML) and environment
// variables; see internal/config. The server stops on SIGINT/SIGTERM
// after draining in-flight requests.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/xploar/xploar-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
