package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Count records a number of names under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Seed records the generation seed under the key "seed".
func Seed(seed string) slog.Attr {
	return slog.String("seed", seed)
}

// Attempt records a 1-based batch number under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Source records a corpus source description under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}
