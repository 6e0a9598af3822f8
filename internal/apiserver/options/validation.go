// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import genericoptions "github.com/abdulrazak24/cake-manager-api/internal/pkg/options"

// Validate 汇总各分组的校验错误
func (o *Options) Validate() []error {
	var errs []error

	errs = append(errs, o.GenericServerRunOptions.Validate()...)
	errs = append(errs, o.InsecureServing.Validate()...)
	errs = append(errs, o.SecureServing.Validate()...)
	errs = append(errs, o.JwtOptions.Validate()...)
	errs = append(errs, o.FeatureOptions.Validate()...)
	errs = append(errs, o.RateLimitOptions.Validate()...)
	errs = append(errs, o.StoreOptions.Validate()...)
	errs = append(errs, o.RedisOptions.Validate()...)
	errs = append(errs, o.AccountOptions.Validate()...)
	errs = append(errs, o.Log.Validate()...)

	// 只校验实际使用的存储
	switch o.StoreOptions.Type {
	case genericoptions.StoreMySQL:
		errs = append(errs, o.MySQLOptions.Validate()...)
	case genericoptions.StoreSQLite:
		errs = append(errs, o.SQLiteOptions.Validate()...)
	}

	return errs
}
