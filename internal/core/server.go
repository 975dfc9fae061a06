// Package core runs the optional event bridge server.
package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/open-sunsama/shell/internal/handler"
	"github.com/open-sunsama/shell/internal/version"
)

// HTTPShutdownTimeout is the timeout for HTTP server shutdown
const HTTPShutdownTimeout = 5 * time.Second

// ServerConfig 服务器配置
type ServerConfig struct {
	Addr string
	Hub  *handler.WebSocketHub
	Auth *handler.AuthMiddleware
}

// ManagedServer 可管理的服务器（支持启动/停止）
type ManagedServer struct {
	config     *ServerConfig
	httpServer *http.Server
	mux        *http.ServeMux
	mu         sync.Mutex
	isRunning  bool
	addr       string
}

// NewManagedServer 创建可管理的服务器
func NewManagedServer(config *ServerConfig) (*ManagedServer, error) {
	if config.Hub == nil {
		return nil, errors.New("server: websocket hub is required")
	}
	if config.Auth == nil {
		config.Auth = handler.NewAuthMiddleware("")
	}
	log.Printf("[Server] Creating event bridge on %s", config.Addr)

	s := &ManagedServer{config: config}
	s.mux = s.setupRoutes()
	return s, nil
}

// setupRoutes 设置所有路由
func (s *ManagedServer) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok","version":%q,"clients":%d}`, version.Version, s.config.Hub.ClientCount())
	})

	mux.Handle("/api/auth/", handler.NewAuthHandler(s.config.Auth))
	mux.Handle("/ws", s.config.Auth.Wrap(http.HandlerFunc(s.config.Hub.HandleWebSocket)))

	return mux
}

// Handler returns the route multiplexer, for tests
func (s *ManagedServer) Handler() http.Handler {
	return s.mux
}

// Start binds the listen address and serves in the background
func (s *ManagedServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		log.Printf("[Server] Server already running")
		return nil
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	s.addr = ln.Addr().String()
	s.httpServer = &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[Server] Event bridge listening on %s", s.addr)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[Server] Server error: %v", err)
		}
	}()

	s.isRunning = true
	return nil
}

// Stop 停止服务器
func (s *ManagedServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		return nil
	}

	log.Printf("[Server] Stopping event bridge on %s", s.addr)
	s.config.Hub.Close()

	shutdownCtx, cancel := context.WithTimeout(ctx, HTTPShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Server] HTTP server graceful shutdown failed: %v, forcing close", err)
		if closeErr := s.httpServer.Close(); closeErr != nil {
			log.Printf("[Server] Force close error: %v", closeErr)
		}
	}

	s.isRunning = false
	log.Printf("[Server] Server stopped")
	return nil
}

// IsRunning 检查服务器是否在运行
func (s *ManagedServer) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// Addr returns the bound address once started, else the configured one
func (s *ManagedServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addr != "" {
		return s.addr
	}
	return s.config.Addr
}
