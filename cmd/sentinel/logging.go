package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/sentinel/config"
)

const bytesPerMB = 1 << 20

// setupLogging opens the log file and builds a zap logger writing to it
// The terminal owns stdout/stderr, so without debug logging is discarded
// An existing file larger than MaxSizeMB is rotated to a timestamped name
func setupLogging(cfg config.LoggingConfig, debug bool) (*zap.Logger, *os.File, error) {
	if !debug {
		return zap.NewNop(), nil, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, cfg.File)
	if err := rotateLog(path, int64(cfg.MaxSizeMB)*bytesPerMB); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.AddSync(f), level)
	return zap.New(core), f, nil
}

func newEncoder(format string) zapcore.Encoder {
	if format == "json" {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encCfg.ConsoleSeparator = "  "
	return zapcore.NewConsoleEncoder(encCfg)
}

// rotateLog renames path when it exceeds maxSize; maxSize 0 disables rotation
func rotateLog(path string, maxSize int64) error {
	if maxSize <= 0 {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxSize {
		return nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	rotated := fmt.Sprintf("%s-%s%s", stem, time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
