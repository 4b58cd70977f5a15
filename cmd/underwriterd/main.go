// File path: cmd/underwriterd/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/underwritehq/underwriter/internal/api"
	"github.com/underwritehq/underwriter/internal/common"
	"github.com/underwritehq/underwriter/internal/config"
	"github.com/underwritehq/underwriter/internal/export"
	"github.com/underwritehq/underwriter/internal/llm"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("underwriter: .env file not loaded", "error", err)
	} else {
		logger.Info("underwriter: environment loaded from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("underwriter: configuration invalid", "error", err)
		fmt.Println("configuration error:", err)
		os.Exit(1)
	}

	logger.Info("underwriter: startup initiated", "addr", cfg.Addr, "provider", cfg.Provider)

	provider, err := llm.Default(ctx, cfg)
	if err != nil {
		logger.Error("underwriter: provider initialization failed", "error", err)
		fmt.Println("provider error:", err)
		os.Exit(1)
	}
	logger.Info("underwriter: generation provider ready", "provider", provider.Name())

	exporter, err := export.NewExporter(cfg.ExportDir)
	if err != nil {
		logger.Error("underwriter: export directory unavailable", "error", err)
		fmt.Println("export error:", err)
		os.Exit(1)
	}

	server, err := api.NewServer(provider, exporter, cfg)
	if err != nil {
		logger.Error("underwriter: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("underwriter: server listening", "addr", cfg.Addr, "form", "/", "health", "/healthz")
	fmt.Printf("Serving on %s\n", cfg.Addr)
	reachable := cfg.Addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("underwriter: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))
	if err := http.ListenAndServe(cfg.Addr, server); err != nil {
		logger.Error("underwriter: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}
