// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"github.com/go-playground/validator/v10"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
	cakevalidator "github.com/abdulrazak24/cake-manager-api/pkg/validator"
)

// 字段为空时的提示，按字段声明顺序只报第一个
var blankMessages = map[string]string{
	"flavour": "Flavor cannot be empty or null",
	"icing":   "Icing cannot be empty or null",
}

var validate = cakevalidator.New()

// Validate 校验 flavour、icing 非空，失败返回 ErrValidation
func (c *Cake) Validate() error {
	if c == nil {
		return errors.WithCode(code.ErrValidation, "Cake cannot be null")
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := blankMessages[verrs[0].Field()]; ok {
			return errors.WithCode(code.ErrValidation, "%s", msg)
		}

		return errors.WithCode(code.ErrValidation, "%s is invalid", verrs[0].Field())
	}

	return errors.WrapC(err, code.ErrValidation, "Cake is invalid")
}

// Validate 逐个校验，第一个失败项带下标返回
func (l CakeList) Validate() error {
	for i, c := range l {
		if err := c.Validate(); err != nil {
			return errors.WithCode(code.ErrValidation, "cakes[%d]: %s", i, errors.Message(err))
		}
	}

	return nil
}
