// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import "github.com/abdulrazak24/cake-manager-api/internal/apiserver/store"

// Service 业务层入口
type Service interface {
	Cakes() CakeSrv
}

type service struct {
	store store.Factory
}

// NewService 用注入的存储构造业务层
func NewService(store store.Factory) Service {
	return &service{
		store: store,
	}
}

func (s *service) Cakes() CakeSrv {
	return newCakes(s)
}
