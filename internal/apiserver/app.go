// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package apiserver cake-apiserver 的启动流程：选项、存储、认证与路由
package apiserver

import (
	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/config"
	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/options"
	"github.com/abdulrazak24/cake-manager-api/pkg/app"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

const commandDesc = `The Cake API server manages cake records (flavour, icing, image).
Authenticated USERs may list and read cakes; ADMINs may also create,
update and delete them. Requests authenticate with HTTP Basic or with
a Bearer token issued by /login.`

// NewApp 创建 cake-apiserver 命令
func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp("Cake API Server",
		basename,
		app.WithOptions(opts),
		app.WithDescription(commandDesc),
		app.WithDefaultValidArgs(),
		app.WithRunFunc(run(opts)),
	)

	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		log.Init(opts.Log)
		defer log.Flush()

		cfg, err := config.CreateConfigFromOptions(opts)
		if err != nil {
			return err
		}

		return Run(cfg)
	}
}
