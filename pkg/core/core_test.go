// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulrazak24/cake-manager-api/pkg/errors"
	"github.com/abdulrazak24/cake-manager-api/pkg/json"
)

type testCoder struct {
	code   int
	status int
	text   string
}

func (c testCoder) Code() int         { return c.code }
func (c testCoder) HTTPStatus() int   { return c.status }
func (c testCoder) String() string    { return c.text }
func (c testCoder) Reference() string { return "" }

const (
	codeNotFound = 980001
	codeDatabase = 980002
)

func init() {
	gin.SetMode(gin.TestMode)
	errors.Register(testCoder{code: codeNotFound, status: http.StatusNotFound, text: "Cake not found"})
	errors.Register(testCoder{code: codeDatabase, status: http.StatusInternalServerError, text: "Database error"})
}

func serve(h gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h(c)
	c.Writer.WriteHeaderNow()

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrResponse {
	t.Helper()
	var resp ErrResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestWriteResponse_Success(t *testing.T) {
	w := serve(func(c *gin.Context) {
		WriteResponse(c, nil, map[string]string{"flavour": "Chocolate"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"flavour":"Chocolate"}`, w.Body.String())
}

func TestWriteResponse_ClientErrorKeepsMessage(t *testing.T) {
	w := serve(func(c *gin.Context) {
		WriteResponse(c, errors.WithCode(codeNotFound, "Cake not found with id %d", 1), nil)
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode(t, w)
	assert.Equal(t, codeNotFound, resp.Code)
	assert.Equal(t, "Cake not found with id 1", resp.Message)
}

func TestWriteResponse_ServerErrorHidesCause(t *testing.T) {
	w := serve(func(c *gin.Context) {
		err := errors.WrapC(errors.New("dial tcp 10.0.0.1:3306"), codeDatabase, "query cakes: dial tcp")
		WriteResponse(c, err, nil)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Database error", resp.Message)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}

func TestWriteResponse_UncodedError(t *testing.T) {
	w := serve(func(c *gin.Context) {
		WriteResponse(c, errors.New("raw"), nil)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, decode(t, w).Code)
}

func TestWriteCreatedAndNoContent(t *testing.T) {
	w := serve(func(c *gin.Context) { WriteCreated(c, nil, []int{1, 2}) })
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `[1,2]`, w.Body.String())

	w = serve(func(c *gin.Context) { WriteNoContent(c, nil) })
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
