// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package cake

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

// CreateCollection 批量新建，任一项非法整批拒绝
func (ctrl *CakeController) CreateCollection(c *gin.Context) {
	log.L(c).Info("create cake collection function called.")

	var r v1.CakeList
	if err := c.ShouldBindJSON(&r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, "%s", err.Error()), nil)

		return
	}

	cakes, err := ctrl.srv.Cakes().CreateCollection(c, r)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	log.L(c).Infof("%d cakes created", len(cakes))
	core.WriteCreated(c, nil, cakes)
}
