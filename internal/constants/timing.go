package constants

import "time"

// Transient feedback lifetimes
const (
	// RippleLifetime is how long a click ripple stays attached to its card
	RippleLifetime = 600 * time.Millisecond

	// ToastLifetime is how long a notification stays visible after the last show
	ToastLifetime = 2500 * time.Millisecond
)

// Server timing
const (
	ShutdownTimeout   = 5 * time.Second
	ReadHeaderTimeout = 10 * time.Second
	WSWriteTimeout    = 5 * time.Second
	WSPingInterval    = 30 * time.Second
)
