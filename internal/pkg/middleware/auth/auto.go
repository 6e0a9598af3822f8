// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package auth 提供 Basic、JWT 以及按 Authorization 前缀自动选择的认证策略。
package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/middleware"
	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
)

const authHeaderCount = 2

// AutoStrategy 按 Authorization 前缀（Basic/Bearer）选择策略
type AutoStrategy struct {
	basic middleware.AuthStrategy
	jwt   middleware.AuthStrategy
}

var _ middleware.AuthStrategy = &AutoStrategy{}

// NewAutoStrategy 创建自动认证策略
func NewAutoStrategy(basic, jwt middleware.AuthStrategy) AutoStrategy {
	return AutoStrategy{
		basic: basic,
		jwt:   jwt,
	}
}

// AuthFunc 缺少或无法识别 Authorization 头时返回 401
func (a AutoStrategy) AuthFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			core.WriteResponse(c, errors.WithCode(code.ErrMissingHeader, "Full authentication is required to access this resource."), nil)

			return
		}

		operator := middleware.AuthOperator{}
		authHeader := strings.SplitN(header, " ", authHeaderCount)
		if len(authHeader) != authHeaderCount {
			core.WriteResponse(c, errors.WithCode(code.ErrInvalidAuthHeader, "Authorization header format is wrong."), nil)

			return
		}

		switch authHeader[0] {
		case "Basic":
			operator.SetStrategy(a.basic)
		case "Bearer":
			operator.SetStrategy(a.jwt)
		default:
			core.WriteResponse(c, errors.WithCode(code.ErrSignatureInvalid, "Unrecognized Authorization header."), nil)

			return
		}

		operator.AuthFunc()(c)

		c.Next()
	}
}
