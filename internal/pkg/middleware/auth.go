// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package middleware

import (
	"github.com/gin-gonic/gin"
)

// AuthStrategy 认证策略，认证通过后需在上下文中写入 UsernameKey 和 RolesKey
type AuthStrategy interface {
	AuthFunc() gin.HandlerFunc
}

// AuthOperator 持有当前选中的认证策略
type AuthOperator struct {
	strategy AuthStrategy
}

// SetStrategy 切换策略
func (operator *AuthOperator) SetStrategy(strategy AuthStrategy) {
	operator.strategy = strategy
}

// AuthFunc 执行当前策略
func (operator *AuthOperator) AuthFunc() gin.HandlerFunc {
	return operator.strategy.AuthFunc()
}
