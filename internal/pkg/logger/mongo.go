package logger

import (
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/event"
)

// slowThreshold 慢查询告警阈值
const slowThreshold = 200 * time.Millisecond

// NewMongoMonitor 记录每条 Mongo 命令的执行情况
func NewMongoMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(ctx context.Context, evt *event.CommandStartedEvent) {
			log.InfoContext(ctx, "MongoDB Started",
				log.String("command", evt.CommandName),
				log.String("database", evt.DatabaseName),
			)
		},
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			fields := []any{
				log.String("command", evt.CommandName),
				log.Duration("latency", evt.Duration),
			}

			if evt.Duration > slowThreshold {
				log.WarnContext(ctx, "MongoDB Slow", fields...)
			} else {
				log.InfoContext(ctx, "MongoDB Success", fields...)
			}
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			log.ErrorContext(ctx, "MongoDB Error",
				log.String("command", evt.CommandName),
				log.Duration("latency", evt.Duration),
				log.Any("err", evt.Failure),
			)
		},
	}
}
