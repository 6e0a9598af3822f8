// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package apiserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/controller/v1/cake"
	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/store"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/middleware"
	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"

	_ "github.com/abdulrazak24/cake-manager-api/pkg/validator"
)

// route 一条受角色保护的路由
type route struct {
	method  string
	path    string
	role    string
	handler gin.HandlerFunc
}

// cakeRoutes /cakes 下的全部路由，读需要 USER，写需要 ADMIN
func cakeRoutes(ctrl *cake.CakeController) []route {
	return []route{
		{http.MethodGet, "", v1.RoleUser, ctrl.List},
		{http.MethodGet, "/:id", v1.RoleUser, ctrl.Get},
		{http.MethodPost, "/createCake", v1.RoleAdmin, ctrl.Create},
		{http.MethodPost, "/createCakesFromJsonArray", v1.RoleAdmin, ctrl.CreateCollection},
		{http.MethodPut, "/:id", v1.RoleAdmin, ctrl.Update},
		{http.MethodDelete, "/:id", v1.RoleAdmin, ctrl.Delete},
	}
}

func initRouter(g *gin.Engine, storeIns store.Factory, a *authenticator) error {
	return installController(g, storeIns, a)
}

func installController(g *gin.Engine, storeIns store.Factory, a *authenticator) error {
	jwtStrategy, err := a.newJWTAuth()
	if err != nil {
		return err
	}

	g.POST("/login", jwtStrategy.LoginHandler)
	g.POST("/refresh", a.refreshGuard(jwtStrategy), jwtStrategy.RefreshHandler)
	g.POST("/logout", jwtStrategy.AuthFunc(), jwtStrategy.LogoutHandler)

	g.NoRoute(func(c *gin.Context) {
		core.WriteResponse(c, errors.WithCode(code.ErrPageNotFound, "Page not found."), nil)
	})

	auto := a.newAutoAuth(jwtStrategy)
	cakev1 := g.Group("/cakes", auto.AuthFunc())
	{
		cakeController := cake.NewCakeController(storeIns)

		for _, r := range cakeRoutes(cakeController) {
			cakev1.Handle(r.method, r.path, middleware.Authorize(r.role), r.handler)
		}
	}

	return nil
}
