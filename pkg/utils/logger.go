package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "seat-booking.log"

// InitLogger writes to stdout and to a rotating file under config.LogPath.
// Debug switches to the console encoder at debug level.
func InitLogger(config AppConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if config.Debug {
		level.SetLevel(zap.DebugLevel)
	}

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if config.LogPath != "" {
		if err := os.MkdirAll(config.LogPath, 0o755); err != nil {
			return nil, err
		}
		sinks = append(sinks, rotatingFile(filepath.Join(config.LogPath, logFileName)))
	}

	encoder := newEncoder(config.Debug)
	cores := make([]zapcore.Core, len(sinks))
	for i, sink := range sinks {
		cores[i] = zapcore.NewCore(encoder, sink, level)
	}

	logger := zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(zap.String("app", config.Name)),
	)
	return logger, nil
}

func newEncoder(debug bool) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	if debug {
		cfg = zap.NewDevelopmentEncoderConfig()
	}
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.CallerKey = "caller"
	cfg.EncodeCaller = zapcore.ShortCallerEncoder

	if debug {
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(cfg)
}

func rotatingFile(filename string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10, // MB
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	})
}
