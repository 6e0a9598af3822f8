// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package cake cake 资源的 HTTP 处理器
package cake

import (
	"strconv"

	"github.com/gin-gonic/gin"

	srvv1 "github.com/abdulrazak24/cake-manager-api/internal/apiserver/service/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/store"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
)

// CakeController 持有业务层，处理 /cakes 路由
type CakeController struct {
	srv srvv1.Service
}

// NewCakeController 以注入的存储构造控制器
func NewCakeController(store store.Factory) *CakeController {
	return &CakeController{
		srv: srvv1.NewService(store),
	}
}

// cakeID 解析路径参数 id，非正整数返回 ErrBind
func cakeID(c *gin.Context) (uint64, error) {
	raw := c.Param("id")

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.WithCode(code.ErrBind, "Invalid cake id %q", raw)
	}

	return id, nil
}
