// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package log 基于 zap 的结构化日志封装。
//
// 普通日志（低于 error）写入 OutputPaths，error 及以上写入 ErrorOutputPaths。
// 请求链路中使用 L(ctx) 取得带 requestID 与 username 的子日志器。
package log

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InfoLogger 非错误日志接口
type InfoLogger interface {
	Info(msg string, fields ...Field)
	Infof(format string, v ...interface{})
	Infow(msg string, keysAndValues ...interface{})

	// Enabled 当前级别是否输出
	Enabled() bool
}

// Logger 完整日志接口
type Logger interface {
	InfoLogger
	Debug(msg string, fields ...Field)
	Debugf(format string, v ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Warn(msg string, fields ...Field)
	Warnf(format string, v ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Error(msg string, fields ...Field)
	Errorf(format string, v ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Panic(msg string, fields ...Field)
	Panicf(format string, v ...interface{})
	Panicw(msg string, keysAndValues ...interface{})
	Fatal(msg string, fields ...Field)
	Fatalf(format string, v ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})

	// V 返回指定详细程度的 InfoLogger，0 为 info，1 为 debug
	V(level int) InfoLogger
	Write(p []byte) (n int, err error)

	WithValues(keysAndValues ...interface{}) Logger
	WithName(name string) Logger

	Flush()
}

var _ Logger = &zapLogger{}

type noopInfoLogger struct{}

func (l *noopInfoLogger) Enabled() bool                    { return false }
func (l *noopInfoLogger) Info(_ string, _ ...Field)        {}
func (l *noopInfoLogger) Infof(_ string, _ ...interface{}) {}
func (l *noopInfoLogger) Infow(_ string, _ ...interface{}) {}

var disabledInfoLogger = &noopInfoLogger{}

type infoLogger struct {
	level zapcore.Level
	log   *zap.Logger
}

func (l *infoLogger) Enabled() bool { return true }

func (l *infoLogger) Info(msg string, fields ...Field) {
	if ce := l.log.Check(l.level, msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *infoLogger) Infof(format string, args ...interface{}) {
	if ce := l.log.Check(l.level, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}

func (l *infoLogger) Infow(msg string, keysAndValues ...interface{}) {
	if ce := l.log.Check(l.level, msg); ce != nil {
		ce.Write(handleFields(l.log, keysAndValues)...)
	}
}

type zapLogger struct {
	zapLogger *zap.Logger
	infoLogger
}

// handleFields 把 key/value 列表转换为 zap.Field，键必须是字符串且成对出现
func handleFields(l *zap.Logger, args []interface{}, additional ...zap.Field) []zap.Field {
	if len(args) == 0 {
		return additional
	}

	fields := make([]zap.Field, 0, len(args)/2+len(additional))
	for i := 0; i < len(args); {
		if _, ok := args[i].(zap.Field); ok {
			l.DPanic("strongly-typed Zap Field passed to logr", zap.Any("zap field", args[i]))
			break
		}

		if i == len(args)-1 {
			l.DPanic("odd number of arguments passed as key-value pairs for logging", zap.Any("ignored key", args[i]))
			break
		}

		key, val := args[i], args[i+1]
		keyStr, isString := key.(string)
		if !isString {
			l.DPanic(
				"non-string key argument passed to logging, ignoring all later arguments",
				zap.Any("invalid key", key),
			)
			break
		}

		fields = append(fields, zap.Any(keyStr, val))
		i += 2
	}

	return append(fields, additional...)
}

var (
	std = New(NewOptions())
	mu  sync.Mutex
)

// Init 按配置重建全局日志器
func Init(opts *Options) {
	mu.Lock()
	defer mu.Unlock()
	std = New(opts)
}

// New 按配置创建日志器，配置非法时退回默认值
func New(opts *Options) *zapLogger {
	if opts == nil {
		opts = NewOptions()
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(opts.Level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	encodeLevel := zapcore.CapitalLevelEncoder
	if opts.Format == consoleFormat && opts.EnableColor {
		encodeLevel = zapcore.CapitalColorLevelEncoder
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     timeEncoder,
		EncodeDuration: milliSecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if strings.ToLower(opts.Format) == jsonFormat {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	stdCore := zapcore.NewCore(
		encoder,
		openSinks(opts.OutputPaths),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl < zapcore.ErrorLevel && lvl >= zapLevel
		}),
	)
	errCore := zapcore.NewCore(
		encoder,
		openSinks(opts.ErrorOutputPaths),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.ErrorLevel && lvl >= zapLevel
		}),
	)

	zapOpts := []zap.Option{zap.AddStacktrace(zapcore.PanicLevel), zap.AddCallerSkip(1)}
	if opts.EnableCaller {
		zapOpts = append(zapOpts, zap.AddCaller())
	}

	l := zap.New(zapcore.NewTee(stdCore, errCore), zapOpts...)
	if opts.Name != "" {
		l = l.Named(opts.Name)
	}
	zap.RedirectStdLog(l)

	return newLogger(l)
}

// openSinks 打开输出目标，stdout/stderr 之外按文件追加写
func openSinks(paths []string) zapcore.WriteSyncer {
	writers := make([]zapcore.WriteSyncer, 0, len(paths))
	for _, path := range paths {
		switch path {
		case "stdout":
			writers = append(writers, zapcore.Lock(os.Stdout))
		case "stderr":
			writers = append(writers, zapcore.Lock(os.Stderr))
		default:
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				panic(fmt.Sprintf("创建日志目录失败: %v", err))
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				panic(fmt.Sprintf("打开日志文件失败: %v", err))
			}
			writers = append(writers, zapcore.AddSync(f))
		}
	}

	return zapcore.NewMultiWriteSyncer(writers...)
}

func newLogger(l *zap.Logger) *zapLogger {
	return &zapLogger{
		zapLogger: l,
		infoLogger: infoLogger{
			log:   l,
			level: zap.InfoLevel,
		},
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func milliSecondsDurationEncoder(d time.Duration, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendFloat64(float64(d) / float64(time.Millisecond))
}

func logger() *zapLogger {
	mu.Lock()
	defer mu.Unlock()

	return std
}

// ZapLogger 返回底层 zap 日志器，供第三方组件（gorm 等）接入
func ZapLogger() *zap.Logger {
	return logger().zapLogger
}

// StdErrLogger 返回 error 级别的标准库 logger，用于 http.Server.ErrorLog
func StdErrLogger() *log.Logger {
	if l, err := zap.NewStdLogAt(logger().zapLogger, zapcore.ErrorLevel); err == nil {
		return l
	}

	return nil
}

// StdInfoLogger 返回 info 级别的标准库 logger
func StdInfoLogger() *log.Logger {
	if l, err := zap.NewStdLogAt(logger().zapLogger, zapcore.InfoLevel); err == nil {
		return l
	}

	return nil
}

// V 返回全局日志器的分级 InfoLogger
func V(level int) InfoLogger { return logger().V(level) }

func (l *zapLogger) V(level int) InfoLogger {
	if level < 0 || level > 1 {
		panic("valid log level is [0, 1]")
	}
	lvl := zapcore.Level(-1 * level)
	if l.zapLogger.Core().Enabled(lvl) {
		return &infoLogger{
			level: lvl,
			log:   l.zapLogger,
		}
	}

	return disabledInfoLogger
}

func (l *zapLogger) Write(p []byte) (n int, err error) {
	l.zapLogger.Info(string(p))

	return len(p), nil
}

// WithValues 创建附带固定字段的子日志器
func WithValues(keysAndValues ...interface{}) Logger { return logger().WithValues(keysAndValues...) }

func (l *zapLogger) WithValues(keysAndValues ...interface{}) Logger {
	return newLogger(l.zapLogger.With(handleFields(l.zapLogger, keysAndValues)...))
}

// WithName 为日志器追加名称
func WithName(s string) Logger { return logger().WithName(s) }

func (l *zapLogger) WithName(name string) Logger {
	return newLogger(l.zapLogger.Named(name))
}

// Flush 刷新缓冲，进程退出前调用
func Flush() { logger().Flush() }

func (l *zapLogger) Flush() {
	_ = l.zapLogger.Sync()
}

func Debug(msg string, fields ...Field) { logger().zapLogger.Debug(msg, fields...) }

func (l *zapLogger) Debug(msg string, fields ...Field) { l.zapLogger.Debug(msg, fields...) }

func Debugf(format string, v ...interface{}) { logger().zapLogger.Sugar().Debugf(format, v...) }

func (l *zapLogger) Debugf(format string, v ...interface{}) { l.zapLogger.Sugar().Debugf(format, v...) }

func Debugw(msg string, keysAndValues ...interface{}) {
	logger().zapLogger.Sugar().Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Debugw(msg, keysAndValues...)
}

func Info(msg string, fields ...Field) { logger().zapLogger.Info(msg, fields...) }

func (l *zapLogger) Info(msg string, fields ...Field) { l.zapLogger.Info(msg, fields...) }

func Infof(format string, v ...interface{}) { logger().zapLogger.Sugar().Infof(format, v...) }

func (l *zapLogger) Infof(format string, v ...interface{}) { l.zapLogger.Sugar().Infof(format, v...) }

func Infow(msg string, keysAndValues ...interface{}) {
	logger().zapLogger.Sugar().Infow(msg, keysAndValues...)
}

func (l *zapLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Infow(msg, keysAndValues...)
}

func Warn(msg string, fields ...Field) { logger().zapLogger.Warn(msg, fields...) }

func (l *zapLogger) Warn(msg string, fields ...Field) { l.zapLogger.Warn(msg, fields...) }

func Warnf(format string, v ...interface{}) { logger().zapLogger.Sugar().Warnf(format, v...) }

func (l *zapLogger) Warnf(format string, v ...interface{}) { l.zapLogger.Sugar().Warnf(format, v...) }

func Warnw(msg string, keysAndValues ...interface{}) {
	logger().zapLogger.Sugar().Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Warnw(msg, keysAndValues...)
}

func Error(msg string, fields ...Field) { logger().zapLogger.Error(msg, fields...) }

func (l *zapLogger) Error(msg string, fields ...Field) { l.zapLogger.Error(msg, fields...) }

func Errorf(format string, v ...interface{}) { logger().zapLogger.Sugar().Errorf(format, v...) }

func (l *zapLogger) Errorf(format string, v ...interface{}) { l.zapLogger.Sugar().Errorf(format, v...) }

func Errorw(msg string, keysAndValues ...interface{}) {
	logger().zapLogger.Sugar().Errorw(msg, keysAndValues...)
}

func (l *zapLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Errorw(msg, keysAndValues...)
}

func Panic(msg string, fields ...Field) { logger().zapLogger.Panic(msg, fields...) }

func (l *zapLogger) Panic(msg string, fields ...Field) { l.zapLogger.Panic(msg, fields...) }

func Panicf(format string, v ...interface{}) { logger().zapLogger.Sugar().Panicf(format, v...) }

func (l *zapLogger) Panicf(format string, v ...interface{}) { l.zapLogger.Sugar().Panicf(format, v...) }

func Panicw(msg string, keysAndValues ...interface{}) {
	logger().zapLogger.Sugar().Panicw(msg, keysAndValues...)
}

func (l *zapLogger) Panicw(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Panicw(msg, keysAndValues...)
}

func Fatal(msg string, fields ...Field) { logger().zapLogger.Fatal(msg, fields...) }

func (l *zapLogger) Fatal(msg string, fields ...Field) { l.zapLogger.Fatal(msg, fields...) }

func Fatalf(format string, v ...interface{}) { logger().zapLogger.Sugar().Fatalf(format, v...) }

func (l *zapLogger) Fatalf(format string, v ...interface{}) { l.zapLogger.Sugar().Fatalf(format, v...) }

func Fatalw(msg string, keysAndValues ...interface{}) {
	logger().zapLogger.Sugar().Fatalw(msg, keysAndValues...)
}

func (l *zapLogger) Fatalw(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Fatalw(msg, keysAndValues...)
}
