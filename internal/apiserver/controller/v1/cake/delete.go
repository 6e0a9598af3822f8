// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package cake

import (
	"github.com/gin-gonic/gin"

	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

// Delete 删除 cake，成功返回 204
func (ctrl *CakeController) Delete(c *gin.Context) {
	log.L(c).Info("delete cake function called.")

	id, err := cakeID(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteNoContent(c, ctrl.srv.Cakes().Delete(c, id))
}
