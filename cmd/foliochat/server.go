package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/eshfaq-ux/foliochat/internal/analytics"
	"github.com/eshfaq-ux/foliochat/internal/api"
	"github.com/eshfaq-ux/foliochat/internal/config"
	"github.com/eshfaq-ux/foliochat/internal/gemini"
	"github.com/eshfaq-ux/foliochat/internal/knowledge"
	"github.com/eshfaq-ux/foliochat/internal/metrics"
	"github.com/eshfaq-ux/foliochat/internal/pipeline"
	"github.com/eshfaq-ux/foliochat/internal/profile"
	"github.com/eshfaq-ux/foliochat/internal/storage"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the foliochat server (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running foliochat server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stopServer()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show foliochat server status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showStatus()
	},
}

func pidFilePath(dataDir string) string {
	return filepath.Join(dataDir, "foliochat.pid")
}

func writePIDFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func readPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func removePIDFile(path string) {
	os.Remove(path)
}

func runServer() error {
	fmt.Fprintf(os.Stderr, "foliochat version %s\n", version)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	if strings.EqualFold(cfg.Log.Level, "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	// Refuse to start twice. The health probe catches a live server even if
	// a stale PID file was left behind.
	pidPath := pidFilePath(cfg.Storage.DataDir)
	healthURL := fmt.Sprintf("http://127.0.0.1:%d/health", cfg.Server.Port)
	healthClient := &http.Client{Timeout: 2 * time.Second}
	if resp, err := healthClient.Get(healthURL); err == nil {
		resp.Body.Close()
		if pid, pidErr := readPIDFile(pidPath); pidErr == nil {
			printWarning("foliochat is already running (PID %d)", pid)
			return fmt.Errorf("server already running (PID %d)", pid)
		}
		printWarning("foliochat is already running on port %d", cfg.Server.Port)
		return fmt.Errorf("server already running on port %d", cfg.Server.Port)
	}
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer removePIDFile(pidPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load the owner profile.
	var p *profile.Profile
	if cfg.Profile.Path != "" {
		p, err = profile.Load(cfg.Profile.Path)
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}
		slog.Info("profile loaded", "path", cfg.Profile.Path, "owner", p.Personal.Name)
	} else {
		p = profile.Default()
		slog.Info("using embedded profile", "owner", p.Personal.Name)
	}

	store, err := storage.Open(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: closing storage: %v\n", err)
		}
	}()

	// Completion gateway. Without a key the assistant serves fallback
	// templates only.
	var completer pipeline.Completer
	if cfg.Gemini.APIKey != "" {
		client := gemini.NewClient(cfg.Gemini.APIKey).WithModel(cfg.Gemini.Model)
		if cfg.Gemini.BaseURL != "" {
			client = gemini.NewClientWithBaseURL(cfg.Gemini.APIKey, cfg.Gemini.BaseURL).WithModel(cfg.Gemini.Model)
		}
		completer = client
		slog.Info("completion gateway configured", "model", cfg.Gemini.Model)
	} else {
		slog.Warn("no Gemini API key configured, running in degraded mode (fallback answers only)")
	}

	sink := analytics.NewStoreSink(store)
	m := metrics.New()
	assistant := pipeline.New(p, completer, sink, m)

	handler := api.NewHandler(api.Deps{
		Assistant:  assistant,
		Profile:    p,
		Stats:      store,
		Events:     store,
		Metrics:    m,
		AdminToken: cfg.Auth.AdminToken,
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	mcpSrv := api.NewMCPServer(api.MCPDeps{
		Assistant: assistant,
		Profile:   p,
		Index:     knowledge.BuildIndex(p),
	})
	stdioSrv := server.NewStdioServer(mcpSrv)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sink.Run(gctx)
		return nil
	})

	g.Go(func() error {
		if err := stdioSrv.Listen(gctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("MCP stdio server error", "error", err)
		}
		return nil
	})

	g.Go(func() error {
		fmt.Fprintf(os.Stderr, "foliochat listening on %s\n", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		fmt.Fprintln(os.Stderr, "shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func stopServer() error {
	cfg, err := config.Load()
	if err != nil {
		printError("could not load config: %v", err)
		return err
	}

	pidPath := pidFilePath(cfg.Storage.DataDir)
	pid, err := readPIDFile(pidPath)
	if err != nil {
		printError("foliochat is not running (no PID file)")
		return fmt.Errorf("not running: %w", err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		printError("could not find process %d", pid)
		return err
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		printError("could not stop foliochat (PID %d): %v", pid, err)
		removePIDFile(pidPath)
		return err
	}

	printSuccess("Sent stop signal to foliochat (PID %d)", pid)
	return nil
}

func showStatus() error {
	cfg, err := config.Load()
	if err != nil {
		printError("config error: %v", err)
		return nil
	}

	serverURL := fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
	client := &http.Client{Timeout: 2 * time.Second}

	resp, err := client.Get(serverURL + "/health")
	if err != nil {
		printStatus("Server", "stopped")
	} else {
		resp.Body.Close()
		if resp.StatusCode == 200 {
			printStatus("Server", "running on port %d", cfg.Server.Port)
		} else {
			printStatus("Server", "error (HTTP %d)", resp.StatusCode)
		}
	}

	if cfg.Gemini.APIKey != "" {
		printStatus("Gateway", "configured (%s)", cfg.Gemini.Model)
	} else {
		printStatus("Gateway", "not configured (degraded mode)")
	}

	printStatus("Data dir", "%s", cfg.Storage.DataDir)
	return nil
}
