// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// gormLoggerAdapter 把 gorm 日志转到 pkg/log，并带上请求上下文字段
type gormLoggerAdapter struct {
	config logger.Config
}

func newGormLogger(opts *Options) logger.Interface {
	cfg := logger.Config{
		IgnoreRecordNotFoundError: true,
		SlowThreshold:             opts.SlowQueryThreshold,
		LogLevel:                  toGormLogLevel(opts.LogLevel),
	}
	if cfg.SlowThreshold <= 0 {
		cfg.SlowThreshold = defaultSlowQueryThreshold
	}

	return &gormLoggerAdapter{config: cfg}
}

func (g *gormLoggerAdapter) LogMode(level logger.LogLevel) logger.Interface {
	clone := *g
	clone.config.LogLevel = level

	return &clone
}

func (g *gormLoggerAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.config.LogLevel < logger.Info {
		return
	}
	log.L(ctx).Infof("[gorm] %s", fmt.Sprintf(msg, args...))
}

func (g *gormLoggerAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.config.LogLevel < logger.Warn {
		return
	}
	log.L(ctx).Warnf("[gorm] %s", fmt.Sprintf(msg, args...))
}

func (g *gormLoggerAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.config.LogLevel < logger.Error {
		return
	}
	log.L(ctx).Errorf("[gorm] %s", fmt.Sprintf(msg, args...))
}

func (g *gormLoggerAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.config.LogLevel == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	if rows < 0 {
		rows = 0
	}

	switch {
	case err != nil && g.config.LogLevel >= logger.Error &&
		!(g.config.IgnoreRecordNotFoundError && errors.Is(err, gorm.ErrRecordNotFound)):
		log.L(ctx).Errorf("[gorm] error=%v elapsed=%s rows=%d sql=%s", err, elapsed, rows, sql)
	case elapsed > g.config.SlowThreshold && g.config.LogLevel >= logger.Warn:
		log.L(ctx).Warnf("[gorm] slow query >= %s elapsed=%s rows=%d sql=%s", g.config.SlowThreshold, elapsed, rows, sql)
	case g.config.LogLevel >= logger.Info:
		log.L(ctx).Debugf("[gorm] elapsed=%s rows=%d sql=%s", elapsed, rows, sql)
	}
}

// toGormLogLevel 0 静默，1 错误，2 警告，3 及以上信息
func toGormLogLevel(level int) logger.LogLevel {
	switch {
	case level <= 0:
		return logger.Silent
	case level == 1:
		return logger.Error
	case level == 2:
		return logger.Warn
	default:
		return logger.Info
	}
}
