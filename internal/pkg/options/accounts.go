// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"

	pkgvalidator "github.com/abdulrazak24/cake-manager-api/pkg/validator"
)

// Account 可登录账号，只能通过配置文件或环境变量提供
type Account struct {
	Username string   `json:"username" mapstructure:"username" validate:"notblank"`
	Password string   `json:"-"        mapstructure:"password" validate:"notblank"`
	Roles    []string `json:"roles"    mapstructure:"roles"    validate:"notblank,dive,oneof=USER ADMIN"`
}

// AccountOptions 账号列表
type AccountOptions struct {
	Users []Account `json:"users"       mapstructure:"users"`
	Cost  int       `json:"bcrypt-cost" mapstructure:"bcrypt-cost"`
}

// NewAccountOptions 默认没有任何账号
func NewAccountOptions() *AccountOptions {
	return &AccountOptions{
		Users: []Account{},
		Cost:  bcrypt.DefaultCost,
	}
}

// Complete 把明文密码换成 bcrypt 哈希，已是哈希的保持不变
func (o *AccountOptions) Complete() error {
	for i := range o.Users {
		if isBcryptHash(o.Users[i].Password) {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(o.Users[i].Password), o.Cost)
		if err != nil {
			return fmt.Errorf("hash password of account %q: %w", o.Users[i].Username, err)
		}
		o.Users[i].Password = string(hashed)
	}

	return nil
}

// Validate 校验账号字段、角色取值与用户名唯一
func (o *AccountOptions) Validate() []error {
	var errs []error

	if o.Cost < bcrypt.MinCost || o.Cost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("--accounts.bcrypt-cost %d must be between %d and %d",
			o.Cost, bcrypt.MinCost, bcrypt.MaxCost))
	}

	v := pkgvalidator.New()
	seen := make(map[string]struct{}, len(o.Users))
	for i := range o.Users {
		if err := v.Struct(&o.Users[i]); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					errs = append(errs, fmt.Errorf("accounts.users[%d].%s failed on the %q rule", i, fe.Field(), fe.Tag()))
				}
				continue
			}
			errs = append(errs, fmt.Errorf("accounts.users[%d]: %w", i, err))
			continue
		}

		if _, ok := seen[o.Users[i].Username]; ok {
			errs = append(errs, fmt.Errorf("accounts.users[%d]: duplicate username %q", i, o.Users[i].Username))
		}
		seen[o.Users[i].Username] = struct{}{}
	}

	return errs
}

// AddFlags 账号列表不提供命令行参数，这里只绑定哈希强度
func (o *AccountOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.Cost, "accounts.bcrypt-cost", o.Cost, ""+
		"bcrypt cost used to hash plaintext passwords in accounts.users.")
}

// Lookup 按用户名查找账号
func (o *AccountOptions) Lookup(username string) (Account, bool) {
	for _, a := range o.Users {
		if a.Username == username {
			return a, true
		}
	}

	return Account{}, false
}

// Authenticate 校验用户名与密码，成功时返回角色
func (o *AccountOptions) Authenticate(username, password string) ([]string, bool) {
	a, ok := o.Lookup(username)
	if !ok {
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)); err != nil {
		return nil, false
	}

	return a.Roles, true
}

func isBcryptHash(s string) bool {
	if !strings.HasPrefix(s, "$2") {
		return false
	}
	_, err := bcrypt.Cost([]byte(s))

	return err == nil
}
