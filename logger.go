package linkprep

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with linkprep-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSentence adds the sentence length to the logger.
func (l *Logger) WithSentence(length int) *Logger {
	return &Logger{
		Logger: l.Logger.With("sentence_length", length),
	}
}

// WithWord adds a word index and its string to the logger.
func (l *Logger) WithWord(index int, word string) *Logger {
	return &Logger{
		Logger: l.Logger.With("word", index, "string", word),
	}
}

// LogPrepare logs a sentence preparation.
func (l *Logger) LogPrepare(ctx context.Context, st Stats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "prepare failed",
			"words", st.Words,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "prepare completed",
		"words", st.Words,
		"disjuncts", st.Disjuncts,
		"clauses", st.Clauses,
		"duplicates", st.Duplicates,
		"unreachable", st.Unreachable,
		"connectors", st.Connectors,
		"tracons", st.TraconsLeft+st.TraconsRight,
		"duration", st.Duration,
	)
}

// LogTruncation logs the disjuncts removed from a word by random truncation.
func (l *Logger) LogTruncation(ctx context.Context, word, removed, limit int) {
	l.InfoContext(ctx, "disjuncts truncated",
		"word", word,
		"removed", removed,
		"max_disjuncts", limit,
	)
}

// LogBatch logs a batch preparation.
func (l *Logger) LogBatch(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch prepare completed with failures",
			"total", count,
			"failed", failed,
		)
	} else {
		l.InfoContext(ctx, "batch prepare completed",
			"count", count,
		)
	}
}
