// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package middleware

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

// Authorize 要求调用方具备 role，否则以 403 终止请求，后续处理器不会执行
func Authorize(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !v1.HasRole(Roles(c), role) {
			log.L(c).Warnf("%s %s rejected: %s role required", c.Request.Method, c.FullPath(), role)
			core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied, "Access is denied: %s role required", role), nil)

			return
		}

		c.Next()
	}
}
