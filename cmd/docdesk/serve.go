package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docdesk/internal/api"
	"github.com/dgallion1/docdesk/internal/docstore"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the document API, the desktop websocket and the static client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(parent context.Context) error {
	log, cfg := a.log, a.cfg
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return err
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Pick the document source.
	var source api.Source
	if cfg.DocsURL != "" {
		client := docstore.NewClient(cfg.DocsURL, cfg.FetchTimeout)
		defer client.Close()
		source = client
		log.Info("using remote store", "url", cfg.DocsURL)
	} else {
		lib, err := docstore.Open(cfg.DocsPath, log)
		if err != nil {
			log.Error("failed to load store", "error", err)
			return err
		}
		source = lib
		if cfg.WatchDocs {
			go func() {
				if err := lib.Watch(ctx); err != nil {
					log.Warn("store watcher stopped", "error", err)
				}
			}()
		}
	}

	srv := api.NewServer(source, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
		// Desktop websockets end when ctx does.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
		case <-ctx.Done():
		}
		log.Info("shutting down...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docdesk", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", "error", err)
		return err
	}
	return nil
}
