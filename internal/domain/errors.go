package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when a key or row does not exist
	ErrNotFound = errors.New("not found")

	// ErrUnsupported is returned when the current platform lacks a capability
	ErrUnsupported = errors.New("unsupported on this platform")

	// ErrNoUI is returned when no webview is attached to receive an event
	ErrNoUI = errors.New("no UI layer attached")

	// ErrNoWindow is returned when the main window handle is gone
	ErrNoWindow = errors.New("main window not available")

	// ErrDuplicateBinding marks a startup configuration defect
	ErrDuplicateBinding = errors.New("duplicate binding")
)
