package npu

import (
	"context"
	"log/slog"
)

// LevelTrace is the slog level used for per-cycle simulator events.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace emits a structured simulator event.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
