// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package options cake-apiserver 的全部命令行与配置文件选项
package options

import (
	genericoptions "github.com/abdulrazak24/cake-manager-api/internal/pkg/options"
	cliflag "github.com/abdulrazak24/cake-manager-api/pkg/cli/flag"
	"github.com/abdulrazak24/cake-manager-api/pkg/json"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

// Options 运行 cake-apiserver 所需的选项
type Options struct {
	GenericServerRunOptions *genericoptions.ServerRunOptions       `json:"server"    mapstructure:"server"`
	InsecureServing         *genericoptions.InsecureServingOptions `json:"insecure"  mapstructure:"insecure"`
	SecureServing           *genericoptions.SecureServingOptions   `json:"secure"    mapstructure:"secure"`
	JwtOptions              *genericoptions.JwtOptions             `json:"jwt"       mapstructure:"jwt"`
	FeatureOptions          *genericoptions.FeatureOptions         `json:"feature"   mapstructure:"feature"`
	RateLimitOptions        *genericoptions.RateLimitOptions       `json:"ratelimit" mapstructure:"ratelimit"`
	StoreOptions            *genericoptions.StoreOptions           `json:"store"     mapstructure:"store"`
	MySQLOptions            *genericoptions.MySQLOptions           `json:"mysql"     mapstructure:"mysql"`
	SQLiteOptions           *genericoptions.SQLiteOptions          `json:"sqlite"    mapstructure:"sqlite"`
	RedisOptions            *genericoptions.RedisOptions           `json:"redis"     mapstructure:"redis"`
	AccountOptions          *genericoptions.AccountOptions         `json:"accounts"  mapstructure:"accounts"`
	Log                     *log.Options                           `json:"log"       mapstructure:"log"`
}

// NewOptions 全部取默认值
func NewOptions() *Options {
	return &Options{
		GenericServerRunOptions: genericoptions.NewServerRunOptions(),
		InsecureServing:         genericoptions.NewInsecureServingOptions(),
		SecureServing:           genericoptions.NewSecureServingOptions(),
		JwtOptions:              genericoptions.NewJwtOptions(),
		FeatureOptions:          genericoptions.NewFeatureOptions(),
		RateLimitOptions:        genericoptions.NewRateLimitOptions(),
		StoreOptions:            genericoptions.NewStoreOptions(),
		MySQLOptions:            genericoptions.NewMySQLOptions(),
		SQLiteOptions:           genericoptions.NewSQLiteOptions(),
		RedisOptions:            genericoptions.NewRedisOptions(),
		AccountOptions:          genericoptions.NewAccountOptions(),
		Log:                     log.NewOptions(),
	}
}

// Flags 按分组返回命令行参数
func (o *Options) Flags() (fss cliflag.NamedFlagSets) {
	o.GenericServerRunOptions.AddFlags(fss.FlagSet("generic"))
	o.JwtOptions.AddFlags(fss.FlagSet("jwt"))
	o.StoreOptions.AddFlags(fss.FlagSet("store"))
	o.MySQLOptions.AddFlags(fss.FlagSet("mysql"))
	o.SQLiteOptions.AddFlags(fss.FlagSet("sqlite"))
	o.RedisOptions.AddFlags(fss.FlagSet("redis"))
	o.AccountOptions.AddFlags(fss.FlagSet("accounts"))
	o.FeatureOptions.AddFlags(fss.FlagSet("features"))
	o.RateLimitOptions.AddFlags(fss.FlagSet("rate limit"))
	o.InsecureServing.AddFlags(fss.FlagSet("insecure serving"))
	o.SecureServing.AddFlags(fss.FlagSet("secure serving"))
	o.Log.AddFlags(fss.FlagSet("logs"))

	return fss
}

func (o *Options) String() string {
	data, _ := json.Marshal(o)

	return string(data)
}

// Complete 生成缺省的 JWT 密钥、证书路径，并对明文口令做 bcrypt
func (o *Options) Complete() error {
	o.JwtOptions.Complete()

	if err := o.SecureServing.Complete(); err != nil {
		return err
	}

	return o.AccountOptions.Complete()
}
