// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package auth

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/middleware"
	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
)

// CompareFunc 校验用户名密码，成功时返回该账号的角色
type CompareFunc func(username string, password string) (roles []string, ok bool)

// BasicStrategy HTTP Basic 认证
type BasicStrategy struct {
	compare CompareFunc
}

var _ middleware.AuthStrategy = &BasicStrategy{}

// NewBasicStrategy 创建 Basic 认证策略
func NewBasicStrategy(compare CompareFunc) *BasicStrategy {
	return &BasicStrategy{compare: compare}
}

// AuthFunc 认证通过后在上下文写入用户名与角色
func (b *BasicStrategy) AuthFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := strings.SplitN(c.Request.Header.Get("Authorization"), " ", 2)
		if len(auth) != 2 || auth[0] != "Basic" {
			core.WriteResponse(c, errors.WithCode(code.ErrInvalidAuthHeader, "Authorization header format is wrong."), nil)

			return
		}

		payload, err := base64.StdEncoding.DecodeString(auth[1])
		if err != nil {
			core.WriteResponse(c, errors.WithCode(code.ErrInvalidAuthHeader, "Basic credentials are not valid base64."), nil)

			return
		}

		pair := strings.SplitN(string(payload), ":", 2)
		if len(pair) != 2 {
			core.WriteResponse(c, errors.WithCode(code.ErrInvalidAuthHeader, "Basic credentials must be username:password."), nil)

			return
		}

		roles, ok := b.compare(pair[0], pair[1])
		if !ok {
			core.WriteResponse(c, errors.WithCode(code.ErrPasswordIncorrect, "Bad credentials."), nil)

			return
		}

		c.Set(middleware.UsernameKey, pair[0])
		c.Set(middleware.RolesKey, roles)
		c.Next()
	}
}
