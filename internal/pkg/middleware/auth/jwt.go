// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package auth

import (
	ginjwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/middleware"
)

// AuthzAudience 签发令牌的 aud
const AuthzAudience = "cake.api.abdulrazak24.github.com"

// JWTStrategy Bearer 令牌认证，包装 gin-jwt
type JWTStrategy struct {
	*ginjwt.GinJWTMiddleware
}

var _ middleware.AuthStrategy = &JWTStrategy{}

// NewJWTStrategy 包装已初始化的 gin-jwt 中间件
func NewJWTStrategy(gjwt *ginjwt.GinJWTMiddleware) JWTStrategy {
	return JWTStrategy{gjwt}
}

// AuthFunc 校验令牌。用户名与角色由 IdentityHandler 写入上下文。
func (j JWTStrategy) AuthFunc() gin.HandlerFunc {
	return j.MiddlewareFunc()
}
