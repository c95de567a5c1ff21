package slogpretty

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLogHandler_Handle(t *testing.T) {
	bufWo := bytes.NewBuffer(nil)
	bufWe := bytes.NewBuffer(nil)

	h := &Handler{
		We:  &lockedWriter{w: bufWe},
		Wo:  &lockedWriter{w: bufWo},
		Lvl: slog.LevelDebug,
		Goa: make([]GroupOrAttrs, 0),
	}

	record := slog.Record{
		Time:    time.Date(2024, 06, 26, 0, 0, 0, 0, time.UTC),
		Message: "root popped",
		Level:   slog.LevelDebug,
	}
	record.Add("root", uint64(7))
	record.Add("coverage", "entire_root")
	record.Add("width", 12)
	record.Add("checkpoint", 4)
	record.Add(slog.Group("batch", slog.String("role", "start")))
	require.NoError(t, h.Handle(context.Background(), record))
	require.Greater(t, bufWo.Len(), 0)

	record.Level = slog.LevelInfo
	require.NoError(t, h.Handle(context.Background(), record))
	record.Level = slog.LevelWarn
	require.NoError(t, h.Handle(context.Background(), record))
	record.Level = slog.LevelError
	require.NoError(t, h.Handle(context.Background(), record))
	require.Greater(t, bufWe.Len(), 0)

	record.Message = "mismatch"
	require.NoError(t, h.Handle(context.Background(), record))
}
