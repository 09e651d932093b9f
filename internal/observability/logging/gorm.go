package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes gorm output into slog under the store module.
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormlogger.LogLevel
}

func NewGormLogger(slowThreshold time.Duration, level string) *GormLogger {
	l := &GormLogger{
		SlowThreshold: slowThreshold,
		LogLevel:      gormlogger.Warn,
	}

	if ParseLevel(level) == slog.LevelDebug {
		l.LogLevel = gormlogger.Info
	}

	return l
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.LogLevel = level

	return &newLogger
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.LogLevel >= gormlogger.Info {
		slog.InfoContext(WithModule(ctx, ModuleStore), fmt.Sprintf(msg, args...),
			slog.String("event", "store.log"),
		)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.LogLevel >= gormlogger.Warn {
		slog.WarnContext(WithModule(ctx, ModuleStore), fmt.Sprintf(msg, args...),
			slog.String("event", "store.log"),
		)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.LogLevel >= gormlogger.Error {
		slog.ErrorContext(WithModule(ctx, ModuleStore), fmt.Sprintf(msg, args...),
			slog.String("event", "store.log"),
		)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	ctx = WithModule(ctx, ModuleStore)
	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && l.LogLevel >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		slog.ErrorContext(ctx, "store query failed",
			slog.String("event", "store.query.fail"),
			slog.String("error", err.Error()),
			slog.Duration("duration", elapsed),
			slog.String("sql", sql),
		)
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.LogLevel >= gormlogger.Warn:
		slog.WarnContext(ctx, "slow store query",
			slog.String("event", "store.query.slow"),
			slog.Duration("duration", elapsed),
			slog.Duration("threshold", l.SlowThreshold),
			slog.String("sql", sql),
			slog.Int64("rows", rows),
		)
	case l.LogLevel >= gormlogger.Info:
		slog.DebugContext(ctx, "store query",
			slog.String("event", "store.query"),
			slog.Duration("duration", elapsed),
			slog.String("sql", sql),
			slog.Int64("rows", rows),
		)
	}
}
