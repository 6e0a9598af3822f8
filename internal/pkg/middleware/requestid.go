// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// XRequestIDKey 请求 ID 头，同时作为 gin 上下文的键
const XRequestIDKey = "X-Request-ID"

// RequestID 复用客户端传入的请求 ID，没有则生成 UUID，并回写到响应头
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(XRequestIDKey)
		if rid == "" {
			rid = uuid.NewString()
			c.Request.Header.Set(XRequestIDKey, rid)
		}
		c.Set(XRequestIDKey, rid)

		c.Writer.Header().Set(XRequestIDKey, rid)
		c.Next()
	}
}

// GetRequestID 读取上下文中的请求 ID
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(XRequestIDKey); ok {
		if requestID, ok := v.(string); ok {
			return requestID
		}
	}

	return c.GetHeader(XRequestIDKey)
}
