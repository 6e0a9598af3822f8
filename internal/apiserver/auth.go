// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package apiserver

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	ginjwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/middleware"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/middleware/auth"
	genericoptions "github.com/abdulrazak24/cake-manager-api/internal/pkg/options"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/revocation"
	genericapiserver "github.com/abdulrazak24/cake-manager-api/internal/pkg/server"
	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

const (
	// APIServerIssuer 令牌签发方
	APIServerIssuer = "cake-apiserver"

	claimRoles = "roles"
	claimJTI   = "jti"

	// authErrorKey 认证过程中产生的带码错误，由 Unauthorized 输出
	authErrorKey = "auth.error"
)

type loginInfo struct {
	Username string `form:"username" json:"username" binding:"required,notblank"`
	Password string `form:"password" json:"password" binding:"required"`
}

// loginUser 登录成功后写入令牌的身份
type loginUser struct {
	Username string
	Roles    []string
}

// authenticator 登录、令牌校验与吊销所需的依赖
type authenticator struct {
	accounts *genericoptions.AccountOptions
	jwt      *genericapiserver.JwtInfo
	revoked  revocation.Store
}

func (a *authenticator) newBasicAuth() middleware.AuthStrategy {
	return auth.NewBasicStrategy(a.accounts.Authenticate)
}

func (a *authenticator) newJWTAuth() (auth.JWTStrategy, error) {
	gjwt, err := ginjwt.New(&ginjwt.GinJWTMiddleware{
		Realm:            a.jwt.Realm,
		SigningAlgorithm: "HS256",
		Key:              []byte(a.jwt.Key),
		Timeout:          a.jwt.Timeout,
		MaxRefresh:       a.jwt.MaxRefresh,
		Authenticator:    a.login(),
		LoginResponse:    tokenResponse,
		RefreshResponse:  tokenResponse,
		LogoutResponse:   a.logoutResponse(),
		PayloadFunc:      payloadFunc,
		IdentityHandler:  identityHandler,
		IdentityKey:      middleware.UsernameKey,
		Authorizator:     a.authorizator(),
		Unauthorized:     unauthorized,
		TokenLookup:      "header: Authorization, query: token, cookie: jwt",
		TokenHeadName:    "Bearer",
		SendCookie:       false,
		TimeFunc:         time.Now,
	})
	if err != nil {
		return auth.JWTStrategy{}, errors.Wrap(err, "create jwt middleware")
	}

	return auth.NewJWTStrategy(gjwt), nil
}

func (a *authenticator) newAutoAuth(jwtStrategy auth.JWTStrategy) middleware.AuthStrategy {
	return auth.NewAutoStrategy(a.newBasicAuth(), jwtStrategy)
}

// login 支持 Basic 头或 JSON 请求体两种方式提交账号
func (a *authenticator) login() func(c *gin.Context) (interface{}, error) {
	return func(c *gin.Context) (interface{}, error) {
		var login loginInfo
		var err error

		if c.Request.Header.Get("Authorization") != "" {
			login, err = parseWithHeader(c)
		} else {
			login, err = parseWithBody(c)
		}
		if err != nil {
			return nil, ginjwt.ErrFailedAuthentication
		}

		roles, ok := a.accounts.Authenticate(login.Username, login.Password)
		if !ok {
			log.L(c).Warnf("login failed for user `%s`", login.Username)

			return nil, ginjwt.ErrFailedAuthentication
		}

		log.L(c).Infof("user `%s` logged in", login.Username)

		return &loginUser{Username: login.Username, Roles: roles}, nil
	}
}

func parseWithHeader(c *gin.Context) (loginInfo, error) {
	auth := strings.SplitN(c.Request.Header.Get("Authorization"), " ", 2)
	if len(auth) != 2 || auth[0] != "Basic" {
		log.L(c).Errorf("get basic string from Authorization header failed")

		return loginInfo{}, ginjwt.ErrFailedAuthentication
	}

	payload, err := base64.StdEncoding.DecodeString(auth[1])
	if err != nil {
		log.L(c).Errorf("decode basic string: %s", err.Error())

		return loginInfo{}, ginjwt.ErrFailedAuthentication
	}

	pair := strings.SplitN(string(payload), ":", 2)
	if len(pair) != 2 {
		log.L(c).Errorf("parse payload failed")

		return loginInfo{}, ginjwt.ErrFailedAuthentication
	}

	return loginInfo{
		Username: pair[0],
		Password: pair[1],
	}, nil
}

func parseWithBody(c *gin.Context) (loginInfo, error) {
	var login loginInfo
	if err := c.ShouldBindJSON(&login); err != nil {
		log.L(c).Errorf("parse login parameters: %s", err.Error())

		return loginInfo{}, ginjwt.ErrFailedAuthentication
	}

	return login, nil
}

func tokenResponse(c *gin.Context, _ int, token string, expire time.Time) {
	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"expire": expire.Format(time.RFC3339),
	})
}

func payloadFunc(data interface{}) ginjwt.MapClaims {
	claims := ginjwt.MapClaims{
		"iss":    APIServerIssuer,
		"aud":    auth.AuthzAudience,
		claimJTI: uuid.NewString(),
	}
	if u, ok := data.(*loginUser); ok {
		claims[ginjwt.IdentityKey] = u.Username
		claims["sub"] = u.Username
		claims[claimRoles] = u.Roles
	}

	return claims
}

// identityHandler 从令牌恢复用户名与角色
func identityHandler(c *gin.Context) interface{} {
	claims := ginjwt.ExtractClaims(c)
	c.Set(middleware.RolesKey, rolesFromClaims(claims))

	return claims[ginjwt.IdentityKey]
}

func rolesFromClaims(claims map[string]interface{}) []string {
	raw, _ := claims[claimRoles].([]interface{})

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}

	return roles
}

// authorizator 拒绝已吊销的令牌
func (a *authenticator) authorizator() func(data interface{}, c *gin.Context) bool {
	return func(data interface{}, c *gin.Context) bool {
		username, ok := data.(string)
		if !ok {
			c.Set(authErrorKey, errors.WithCode(code.ErrTokenInvalid, "Token carries no identity."))

			return false
		}

		jti, _ := ginjwt.ExtractClaims(c)[claimJTI].(string)
		if err := a.checkRevoked(c, jti); err != nil {
			c.Set(authErrorKey, err)

			return false
		}

		log.L(c).Debugf("user `%s` is authenticated.", username)

		return true
	}
}

func (a *authenticator) checkRevoked(c *gin.Context, jti string) error {
	if jti == "" {
		return errors.WithCode(code.ErrTokenInvalid, "Token carries no id.")
	}

	revoked, err := a.revoked.IsRevoked(c, jti)
	if err != nil {
		log.L(c).Errorf("check token revocation failed: %-v", err)

		return errors.WithCode(code.ErrTokenInvalid, "Token revocation status is unavailable.")
	}
	if revoked {
		return errors.WithCode(code.ErrTokenRevoked, "Token has been revoked.")
	}

	return nil
}

// refreshGuard 已吊销的令牌不能换发新令牌
func (a *authenticator) refreshGuard(jwtStrategy auth.JWTStrategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwtStrategy.CheckIfTokenExpire(c)
		if err != nil {
			// 交给 RefreshHandler 输出具体原因
			c.Next()

			return
		}

		jti, _ := claims[claimJTI].(string)
		if err := a.checkRevoked(c, jti); err != nil {
			core.WriteResponse(c, err, nil)

			return
		}

		c.Next()
	}
}

// logoutResponse 吊销当前令牌。之前换发的令牌共享 jti，一并失效。
func (a *authenticator) logoutResponse() func(c *gin.Context, code int) {
	return func(c *gin.Context, _ int) {
		jti, _ := ginjwt.ExtractClaims(c)[claimJTI].(string)

		// 同一 jti 下最晚签发的令牌也会在一个有效期内过期
		if err := a.revoked.Revoke(c, jti, time.Now().Add(a.jwt.Timeout)); err != nil {
			core.WriteResponse(c, err, nil)

			return
		}

		log.L(c).Infof("token of user `%s` revoked", c.GetString(middleware.UsernameKey))
		core.WriteNoContent(c, nil)
	}
}

// unauthorized 把 gin-jwt 的失败原因映射为业务错误码
func unauthorized(c *gin.Context, status int, message string) {
	if v, ok := c.Get(authErrorKey); ok {
		if err, ok := v.(error); ok {
			core.WriteResponse(c, err, nil)

			return
		}
	}

	var err error
	switch {
	case status == http.StatusForbidden:
		err = errors.WithCode(code.ErrPermissionDenied, "%s", message)
	case strings.Contains(strings.ToLower(message), "expired"):
		err = errors.WithCode(code.ErrExpired, "%s", message)
	case message == ginjwt.ErrFailedAuthentication.Error(), message == ginjwt.ErrMissingLoginValues.Error():
		err = errors.WithCode(code.ErrPasswordIncorrect, "%s", message)
	case message == ginjwt.ErrEmptyAuthHeader.Error(), message == ginjwt.ErrInvalidAuthHeader.Error():
		err = errors.WithCode(code.ErrInvalidAuthHeader, "%s", message)
	default:
		err = errors.WithCode(code.ErrTokenInvalid, "%s", message)
	}

	core.WriteResponse(c, err, nil)
}
