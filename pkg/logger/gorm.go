package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes gorm's query log through the global slog logger.
// Record-not-found is demoted to debug: the receipt counter is read with
// an expected miss on a fresh system, and entity lookups miss routinely
// on bad IDs, so ErrRecordNotFound is control flow here, not a fault.
type GormLogger struct {
	Level         gormlogger.LogLevel
	SlowThreshold time.Duration
}

// NewGormLogger builds the adapter. slowThreshold comes from config
// (SLOW_QUERY_MS); zero disables slow-query warnings.
func NewGormLogger(level gormlogger.LogLevel, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{
		Level:         level,
		SlowThreshold: slowThreshold,
	}
}

// LogMode returns a copy at the requested level, leaving the receiver
// untouched so gorm sessions can adjust verbosity independently.
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.Level = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.Level >= gormlogger.Info {
		Log.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.Level >= gormlogger.Warn {
		Log.Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.Level >= gormlogger.Error {
		Log.Error(fmt.Sprintf(msg, args...))
	}
}

// Trace logs one executed statement with its timing and row count.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.Level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	attrs := []any{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		Log.Debug("query returned no rows", attrs...)
	case err != nil && l.Level >= gormlogger.Error:
		Log.Error("query failed", append(attrs, slog.String("error", err.Error()))...)
	case l.SlowThreshold > 0 && elapsed >= l.SlowThreshold && l.Level >= gormlogger.Warn:
		Log.Warn("slow query", append(attrs, slog.Duration("threshold", l.SlowThreshold))...)
	case l.Level >= gormlogger.Info:
		Log.Info("query", attrs...)
	}
}
