package handler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// LogWriter tees log output to the console, the log file, and (when a hub
// is given) connected bridge clients.
type LogWriter struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
	hub     *WebSocketHub
}

// NewLogWriter opens logPath for appending. An empty logPath disables the
// file sink; hub may be nil.
func NewLogWriter(console io.Writer, logPath string, hub *WebSocketHub) (*LogWriter, error) {
	w := &LogWriter{console: console, hub: hub}
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
		}
		w.file = f
	}
	return w, nil
}

func (w *LogWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.console != nil {
		_, _ = w.console.Write(p)
	}
	if w.file != nil {
		_, _ = w.file.Write(p)
	}
	if w.hub != nil {
		_, _ = w.hub.Write(p)
	}
	return len(p), nil
}

// Close closes the log file
func (w *LogWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
