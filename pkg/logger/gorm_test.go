package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// captureLog redirects the global logger into a buffer for the test
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Log
	Log = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { Log = prev })
	return &buf
}

func traceFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLogger_LogMode_ReturnsCopy(t *testing.T) {
	l := NewGormLogger(gormlogger.Warn, time.Second)

	clone := l.LogMode(gormlogger.Info)

	assert.Equal(t, gormlogger.Warn, l.Level)
	assert.Equal(t, gormlogger.Info, clone.(*GormLogger).Level)
}

func TestGormLogger_Trace_SilentLogsNothing(t *testing.T) {
	buf := captureLog(t)
	l := NewGormLogger(gormlogger.Silent, time.Second)

	l.Trace(context.Background(), time.Now(), traceFn("SELECT 1", 1), nil)

	assert.Empty(t, buf.String())
}

func TestGormLogger_Trace_RecordNotFoundIsNotAnError(t *testing.T) {
	buf := captureLog(t)
	l := NewGormLogger(gormlogger.Error, time.Second)

	l.Trace(context.Background(), time.Now(), traceFn(`SELECT * FROM "receipt_counters"`, 0), gorm.ErrRecordNotFound)

	out := buf.String()
	assert.Contains(t, out, "query returned no rows")
	assert.NotContains(t, out, "level=ERROR")
}

func TestGormLogger_Trace_QueryErrorLogged(t *testing.T) {
	buf := captureLog(t)
	l := NewGormLogger(gormlogger.Error, time.Second)

	l.Trace(context.Background(), time.Now(), traceFn("INSERT", 0), assert.AnError)

	out := buf.String()
	assert.Contains(t, out, "query failed")
	assert.Contains(t, out, "level=ERROR")
}

func TestGormLogger_Trace_SlowQueryWarned(t *testing.T) {
	buf := captureLog(t)
	l := NewGormLogger(gormlogger.Warn, 50*time.Millisecond)

	began := time.Now().Add(-time.Second)
	l.Trace(context.Background(), began, traceFn("SELECT pg_sleep(1)", 1), nil)

	out := buf.String()
	assert.Contains(t, out, "slow query")
	assert.Contains(t, out, "level=WARN")
}

func TestGormLogger_Trace_ZeroThresholdDisablesSlowWarning(t *testing.T) {
	buf := captureLog(t)
	l := NewGormLogger(gormlogger.Warn, 0)

	began := time.Now().Add(-time.Second)
	l.Trace(context.Background(), began, traceFn("SELECT 1", 1), nil)

	assert.NotContains(t, buf.String(), "slow query")
}
