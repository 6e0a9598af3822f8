// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package cake

import (
	"github.com/gin-gonic/gin"

	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

// List 返回全部 cake
func (ctrl *CakeController) List(c *gin.Context) {
	log.L(c).Debug("list cakes function called.")

	cakes, err := ctrl.srv.Cakes().List(c)
	core.WriteResponse(c, err, cakes)
}
