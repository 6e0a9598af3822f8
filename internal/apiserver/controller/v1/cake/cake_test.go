// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package cake

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/abdulrazak24/cake-manager-api/api/apiserver/v1"
	"github.com/abdulrazak24/cake-manager-api/internal/apiserver/store/fake"
	"github.com/abdulrazak24/cake-manager-api/internal/pkg/code"
	"github.com/abdulrazak24/cake-manager-api/pkg/core"
	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
	"github.com/abdulrazak24/cake-manager-api/pkg/json"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine() (*gin.Engine, *fake.Store) {
	s := fake.NewFactory()
	ctrl := NewCakeController(s)

	g := gin.New()
	g.GET("/cakes", ctrl.List)
	g.GET("/cakes/:id", ctrl.Get)
	g.POST("/cakes/createCake", ctrl.Create)
	g.POST("/cakes/createCakesFromJsonArray", ctrl.CreateCollection)
	g.PUT("/cakes/:id", ctrl.Update)
	g.DELETE("/cakes/:id", ctrl.Delete)

	return g, s
}

func do(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)

	return w
}

func errBody(t *testing.T, w *httptest.ResponseRecorder) core.ErrResponse {
	t.Helper()

	var r core.ErrResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))

	return r
}

func TestCakeController_ListEmpty(t *testing.T) {
	g, _ := newTestEngine()

	w := do(g, http.MethodGet, "/cakes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCakeController_CreateAndGet(t *testing.T) {
	g, _ := newTestEngine()

	w := do(g, http.MethodPost, "/cakes/createCake", `{"id":7,"flavour":"Chocolate","icing":"Fudge","image":null}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"flavour":"Chocolate","icing":"Fudge","image":""}`, w.Body.String())

	w = do(g, http.MethodGet, "/cakes/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cake v1.Cake
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cake))
	assert.Equal(t, v1.Cake{ID: 1, Flavour: "Chocolate", Icing: "Fudge"}, cake)
}

func TestCakeController_Errors(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		status  int
		code    int
		message string
	}{
		{"non-integer id", http.MethodGet, "/cakes/abc", "", http.StatusBadRequest, code.ErrBind, `Invalid cake id "abc"`},
		{"negative id", http.MethodDelete, "/cakes/-1", "", http.StatusBadRequest, code.ErrBind, `Invalid cake id "-1"`},
		{"missing cake", http.MethodGet, "/cakes/1", "", http.StatusNotFound, code.ErrCakeNotFound, "Cake not found with id 1"},
		{"delete missing", http.MethodDelete, "/cakes/1", "", http.StatusNotFound, code.ErrCakeNotFound, "Cake not found with id 1"},
		{
			"id beyond int64", http.MethodGet, "/cakes/9223372036854775808", "",
			http.StatusNotFound, code.ErrCakeNotFound, "Cake not found with id 9223372036854775808",
		},
		{"id beyond uint64", http.MethodGet, "/cakes/18446744073709551616", "", http.StatusBadRequest, code.ErrBind, `Invalid cake id "18446744073709551616"`},
		{
			"blank flavour", http.MethodPost, "/cakes/createCake", `{"flavour":"","icing":"x"}`,
			http.StatusBadRequest, code.ErrValidation, "Flavor cannot be empty or null",
		},
		{
			"blank icing on update", http.MethodPut, "/cakes/1", `{"flavour":"x","icing":"  "}`,
			http.StatusBadRequest, code.ErrValidation, "Icing cannot be empty or null",
		},
		{
			"invalid batch item", http.MethodPost, "/cakes/createCakesFromJsonArray", `[{"flavour":"a","icing":"b"},{"flavour":"c"}]`,
			http.StatusBadRequest, code.ErrValidation, "cakes[1]: Icing cannot be empty or null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestEngine()

			w := do(g, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)

			r := errBody(t, w)
			assert.Equal(t, tt.code, r.Code)
			assert.Equal(t, tt.message, r.Message)
		})
	}
}

func TestCakeController_MalformedJSON(t *testing.T) {
	g, s := newTestEngine()

	for _, path := range []string{"/cakes/createCake", "/cakes/createCakesFromJsonArray"} {
		w := do(g, http.MethodPost, path, `{"flavour":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, code.ErrBind, errBody(t, w).Code)
	}
	assert.Empty(t, s.Calls())
}

func TestCakeController_UpdateAndDelete(t *testing.T) {
	g, _ := newTestEngine()

	require.Equal(t, http.StatusCreated,
		do(g, http.MethodPost, "/cakes/createCake", `{"flavour":"Vanilla","icing":"Buttercream","image":"v.png"}`).Code)

	w := do(g, http.MethodPut, "/cakes/1", `{"flavour":"Strawberry","icing":"Cream"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"flavour":"Strawberry","icing":"Cream","image":""}`, w.Body.String())

	w = do(g, http.MethodDelete, "/cakes/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(g, http.MethodGet, "/cakes/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCakeController_CreateCollection(t *testing.T) {
	g, _ := newTestEngine()

	w := do(g, http.MethodPost, "/cakes/createCakesFromJsonArray",
		`[{"flavour":"Carrot","icing":"Cream cheese"},{"flavour":"Red velvet","icing":"Cream cheese"}]`)
	require.Equal(t, http.StatusCreated, w.Code)

	var cakes []v1.Cake
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cakes))
	require.Len(t, cakes, 2)
	assert.EqualValues(t, 1, cakes[0].ID)
	assert.EqualValues(t, 2, cakes[1].ID)
	assert.Equal(t, "Red velvet", cakes[1].Flavour)

	w = do(g, http.MethodPost, "/cakes/createCakesFromJsonArray", `[]`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCakeController_StoreFailureHidesCause(t *testing.T) {
	g, s := newTestEngine()
	s.FailOn(fake.OpList, errors.WrapC(errors.New("dial tcp 10.0.0.1:3306: refused"), code.ErrDatabase, "list cakes failed"))

	w := do(g, http.MethodGet, "/cakes", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	r := errBody(t, w)
	assert.Equal(t, code.ErrDatabase, r.Code)
	assert.Equal(t, "Database error", r.Message)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}
