// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package cake

import (
	"github.com/gin-gonic/gin"

	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

// Get 按 id 返回 cake
func (ctrl *CakeController) Get(c *gin.Context) {
	log.L(c).Debug("get cake function called.")

	id, err := cakeID(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	cake, err := ctrl.srv.Cakes().Get(c, id)
	core.WriteResponse(c, err, cake)
}
