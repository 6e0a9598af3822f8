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

// Update 覆盖 flavour、icing、image，body 中的 id 被忽略
func (ctrl *CakeController) Update(c *gin.Context) {
	log.L(c).Info("update cake function called.")

	id, err := cakeID(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	var r v1.Cake
	if err := c.ShouldBindJSON(&r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, "%s", err.Error()), nil)

		return
	}

	cake, err := ctrl.srv.Cakes().Update(c, id, &r)
	core.WriteResponse(c, err, cake)
}
