// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/five25/cliparse"
	"github.com/danielhkuo/five25/db"
	"github.com/danielhkuo/five25/router"
	"github.com/danielhkuo/five25/session"
)

const sweepInterval = 10 * time.Minute

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("exiting", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg cliparse.Config

	root := &cobra.Command{
		Use:           "five25",
		Short:         "Focus-first task lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cliparse.Resolve(cmd.Flags(), &cfg); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cliparse.BindFlags(root.PersistentFlags(), &cfg)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Create the schema and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cliparse.Resolve(cmd.Flags(), &cfg); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cliparse.Resolve(cmd.Flags(), &cfg); err != nil {
				return err
			}
			return migrate(cmd.Context(), cfg)
		},
	}

	root.AddCommand(serveCmd, migrateCmd)
	return root
}

func migrate(ctx context.Context, cfg cliparse.Config) error {
	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		return err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)
	return nil
}

func serve(ctx context.Context, cfg cliparse.Config) error {
	// Connect and verify
	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		return err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	mux, sessions, err := router.NewRouter(conn, cfg)
	if err != nil {
		return err
	}

	server := http.Server{
		Handler:           mux,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, sessions)

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		return err
	}
	slog.Info("Server closed")
	return nil
}

// sweepSessions deletes expired sessions until ctx is done
func sweepSessions(ctx context.Context, sessions *session.Manager) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.Sweep(ctx)
			if err != nil {
				slog.Error("session sweep failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("expired sessions removed", "count", n)
			}
		}
	}
}
