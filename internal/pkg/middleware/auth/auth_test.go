// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package auth

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/middleware"
	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/json"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubStrategy struct{ called *bool }

func (s stubStrategy) AuthFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		*s.called = true
		c.Set(middleware.UsernameKey, "jwt-user")
		c.Set(middleware.RolesKey, []string{v1.RoleUser})
		c.Next()
	}
}

func compare(username, password string) ([]string, bool) {
	if username == "admin" && password == "secret" {
		return []string{v1.RoleAdmin}, true
	}

	return nil, false
}

func basicHeader(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func newRouter(strategy middleware.AuthStrategy) (*gin.Engine, *[]string) {
	var roles []string
	r := gin.New()
	r.GET("/cakes", strategy.AuthFunc(), func(c *gin.Context) {
		roles = middleware.Roles(c)
		c.String(http.StatusOK, c.GetString(middleware.UsernameKey))
	})

	return r, &roles
}

func TestAutoStrategy(t *testing.T) {
	jwtCalled := false
	auto := NewAutoStrategy(NewBasicStrategy(compare), stubStrategy{called: &jwtCalled})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   int
		wantUser   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantCode: code.ErrMissingHeader},
		{name: "no credentials", header: "Basic", wantStatus: http.StatusUnauthorized, wantCode: code.ErrInvalidAuthHeader},
		{name: "unknown scheme", header: "Digest abc", wantStatus: http.StatusUnauthorized, wantCode: code.ErrSignatureInvalid},
		{name: "bad base64", header: "Basic !!!", wantStatus: http.StatusUnauthorized, wantCode: code.ErrInvalidAuthHeader},
		{
			name:       "no colon",
			header:     "Basic " + base64.StdEncoding.EncodeToString([]byte("admin")),
			wantStatus: http.StatusUnauthorized,
			wantCode:   code.ErrInvalidAuthHeader,
		},
		{name: "wrong password", header: basicHeader("admin", "nope"), wantStatus: http.StatusUnauthorized, wantCode: code.ErrPasswordIncorrect},
		{name: "basic ok", header: basicHeader("admin", "secret"), wantStatus: http.StatusOK, wantUser: "admin"},
		{name: "bearer delegates", header: "Bearer token", wantStatus: http.StatusOK, wantUser: "jwt-user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRouter(auto)
			req := httptest.NewRequest(http.MethodGet, "/cakes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != 0 {
				var resp core.ErrResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Code)

				return
			}
			assert.Equal(t, tt.wantUser, w.Body.String())
		})
	}

	assert.True(t, jwtCalled)
}

func TestBasicStrategy_SetsRoles(t *testing.T) {
	r, roles := newRouter(NewBasicStrategy(compare))
	req := httptest.NewRequest(http.MethodGet, "/cakes", nil)
	req.Header.Set("Authorization", basicHeader("admin", "secret"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{v1.RoleAdmin}, *roles)
}
