// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

// 认证策略写入 gin 上下文的键。UsernameKey 与日志键相同，认证通过后 log.L(c) 直接带上用户名
const (
	UsernameKey = log.KeyUsername
	RolesKey    = "roles"
)

// Context 把请求 ID 放到日志约定的键上，供 log.L(c) 读取
func Context() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(log.KeyRequestID, GetRequestID(c))
		c.Next()
	}
}

// Roles 当前调用方的角色集合
func Roles(c *gin.Context) []string {
	return c.GetStringSlice(RolesKey)
}
