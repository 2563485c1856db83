package main

import (
	"context"
	"docuchat-backend/config"
	"docuchat-backend/dao"
	"docuchat-backend/router"
	"docuchat-backend/service/chat"
	"docuchat-backend/service/file"
	"docuchat-backend/service/storage"
	"docuchat-backend/service/subscription"
	"docuchat-backend/service/vectorindex"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := dao.Init(); err != nil {
		slog.Error("Failed to init database", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	index, err := vectorindex.NewIndex(ctx)
	if err != nil {
		slog.Error("Failed to init vector index", "err", err)
		os.Exit(1)
	}
	defer index.Close(ctx)

	embedder, err := file.NewEmbedder()
	if err != nil {
		slog.Error("Failed to init embedder", "err", err)
		os.Exit(1)
	}
	file.Embedder = embedder

	llm, err := chat.NewLLM()
	if err != nil {
		slog.Error("Failed to init llm client", "err", err)
		os.Exit(1)
	}

	file.Init(storage.NewClient(), index, subscription.NewResolver())
	chat.Init(llm, embedder, index)

	addr := config.Cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: router.Register(),
	}

	go func() {
		slog.Info("Server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to shutdown server gracefully", "err", err)
	}
}
