package logger

import (
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer

// InitLogger JSON 结构化日志输出到 stdout，并注入 trace_id
func InitLogger() {
	LogWriter = os.Stdout

	handler := log.NewJSONHandler(LogWriter, &log.HandlerOptions{Level: log.LevelInfo})
	logger := log.New(&ContextHandler{handler})
	log.SetDefault(logger)
}
