// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package log

import (
	"context"
)

// 请求上下文中的日志字段名，由 middleware.Context 写入
const (
	KeyRequestID string = "requestID"
	KeyUsername  string = "username"
)

type key int

const (
	logContextKey key = iota
)

// WithContext 把日志器放入 context
func WithContext(ctx context.Context) context.Context {
	return logger().WithContext(ctx)
}

func (l *zapLogger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, logContextKey, l)
}

// FromContext 取出 context 中的日志器，不存在时返回全局日志器
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if l, ok := ctx.Value(logContextKey).(Logger); ok {
			return l
		}
	}

	return logger()
}

// L 返回附带请求 ID 与用户名的日志器。gin.Context 同样实现了 context.Context。
func L(ctx context.Context) Logger {
	return logger().L(ctx)
}

func (l *zapLogger) L(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	lg := l.zapLogger
	if requestID := ctx.Value(KeyRequestID); requestID != nil {
		lg = lg.With(Any(KeyRequestID, requestID))
	}
	if username := ctx.Value(KeyUsername); username != nil {
		lg = lg.With(Any(KeyUsername, username))
	}

	return newLogger(lg)
}
