// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/json"
	"github.com/abdulrazak24/cake-manager-api/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withRoles 模拟认证策略写入的上下文
func withRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(UsernameKey, "tester")
		c.Set(RolesKey, roles)
		c.Next()
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		roles      []string
		required   string
		wantStatus int
		wantCalled bool
	}{
		{name: "user reads", roles: []string{v1.RoleUser}, required: v1.RoleUser, wantStatus: http.StatusOK, wantCalled: true},
		{name: "admin reads", roles: []string{v1.RoleAdmin}, required: v1.RoleUser, wantStatus: http.StatusOK, wantCalled: true},
		{name: "admin writes", roles: []string{v1.RoleAdmin}, required: v1.RoleAdmin, wantStatus: http.StatusOK, wantCalled: true},
		{name: "user writes", roles: []string{v1.RoleUser}, required: v1.RoleAdmin, wantStatus: http.StatusForbidden},
		{name: "no roles", roles: nil, required: v1.RoleUser, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			r := gin.New()
			r.DELETE("/cakes/:id", withRoles(tt.roles...), Authorize(tt.required), func(c *gin.Context) {
				called = true
				c.Status(http.StatusNoContent)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cakes/1", nil))

			assert.Equal(t, tt.wantCalled, called)
			if !tt.wantCalled {
				assert.Equal(t, tt.wantStatus, w.Code)
				var resp core.ErrResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, code.ErrPermissionDenied, resp.Code)
			}
		})
	}
}

func TestRequestIDAndContext(t *testing.T) {
	r := gin.New()
	var gotRequestID, gotUsername interface{}
	r.GET("/ping", RequestID(), withRoles(v1.RoleUser), Context(), func(c *gin.Context) {
		gotRequestID, _ = c.Get(log.KeyRequestID)
		gotUsername, _ = c.Get(log.KeyUsername)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	rid := w.Header().Get(XRequestIDKey)
	assert.NotEmpty(t, rid)
	assert.Equal(t, rid, gotRequestID)
	assert.Equal(t, "tester", gotUsername)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(XRequestIDKey, "client-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "client-id", w.Header().Get(XRequestIDKey))
	assert.Equal(t, "client-id", gotRequestID)
}

func TestContextBeforeAuth(t *testing.T) {
	r := gin.New()
	var beforeAuth, afterAuth bool
	var username interface{}
	r.GET("/ping", RequestID(), Context(), func(c *gin.Context) {
		_, beforeAuth = c.Get(log.KeyUsername)
		c.Next()
	}, withRoles(v1.RoleUser), func(c *gin.Context) {
		username, afterAuth = c.Get(log.KeyUsername)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, beforeAuth)
	assert.True(t, afterAuth)
	assert.Equal(t, "tester", username)
}

func TestLimit(t *testing.T) {
	r := gin.New()
	r.Use(Limit(0.001, 1))
	r.GET("/cakes", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cakes", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cakes", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(LoggerWithWriter(&buf, "/healthz"))
	r.GET("/cakes", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cakes?x=1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Contains(t, buf.String(), "GET")
	assert.Contains(t, buf.String(), "/cakes?x=1")
	assert.NotContains(t, buf.String(), "/healthz")
}

func TestOptionsAndSecure(t *testing.T) {
	r := gin.New()
	r.Use(Options, Secure, NoCache)
	r.GET("/cakes", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/cakes", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Allow"), "DELETE")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cakes", nil))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Cache-Control"))
}
