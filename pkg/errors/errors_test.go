// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCodeNotFound = 990001
	testCodeDatabase = 990002
)

func init() {
	Register(defaultCoder{C: testCodeNotFound, HTTP: http.StatusNotFound, Ext: "Resource not found"})
	Register(defaultCoder{C: testCodeDatabase, HTTP: http.StatusInternalServerError, Ext: "Database error"})
}

func TestNewAndErrorf(t *testing.T) {
	err := New("boom")
	assert.Equal(t, "boom", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")

	err = Errorf("cake %d", 7)
	assert.Equal(t, "cake 7", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "x"))
	assert.Nil(t, Wrapf(nil, "x %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithMessage(nil, "x"))
	assert.Nil(t, WrapC(nil, testCodeDatabase, "x"))
}

func TestWrap_KeepsCause(t *testing.T) {
	root := io.EOF
	err := Wrap(root, "read body")

	assert.Equal(t, root, Cause(err))
	assert.True(t, Is(err, io.EOF))
	assert.Equal(t, "read body", err.Error())
}

func TestWithCode_Format(t *testing.T) {
	err := WithCode(testCodeNotFound, "Cake not found with id %d", 1)

	assert.Equal(t, "Cake not found with id 1", fmt.Sprintf("%s", err))
	assert.Equal(t, "[code: 990001] Cake not found with id 1", fmt.Sprintf("%v", err))
	assert.Equal(t, "[code: 990001] Cake not found with id 1", err.Error())
	assert.True(t, strings.HasPrefix(fmt.Sprintf("%-v", err), "[code: 990001] Cake not found with id 1\n"))
	assert.Contains(t, fmt.Sprintf("%#v", err), `"code": 990001`)
}

func TestWrapC_CodeAndMessage(t *testing.T) {
	root := stderrors.New("dial tcp: connection refused")
	err := WrapC(root, testCodeDatabase, "list cakes failed")

	assert.True(t, IsCode(err, testCodeDatabase))
	assert.False(t, IsCode(err, testCodeNotFound))
	assert.Equal(t, "list cakes failed", Message(err))
	assert.Equal(t, root, Cause(err))
	assert.True(t, Is(err, root))
}

func TestWrap_PreservesCode(t *testing.T) {
	err := Wrap(WithCode(testCodeNotFound, "Cake not found with id %d", 3), "load cake")

	assert.True(t, IsCode(err, testCodeNotFound))
	assert.Equal(t, http.StatusNotFound, ParseCoderByErr(err).HTTPStatus())
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: stderrors.New("plain"), want: "plain"},
		{name: "coded", err: WithCode(testCodeNotFound, "Cake not found with id 5"), want: "Cake not found with id 5"},
		{
			name: "coded behind fmt wrap",
			err:  fmt.Errorf("outer: %w", WithCode(testCodeNotFound, "inner")),
			want: "inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestParseCoderByErr(t *testing.T) {
	assert.Nil(t, ParseCoderByErr(nil))

	coder := ParseCoderByErr(stderrors.New("raw"))
	require.NotNil(t, coder)
	assert.Equal(t, 1, coder.Code())
	assert.Equal(t, http.StatusInternalServerError, coder.HTTPStatus())

	coder = ParseCoderByErr(WithCode(testCodeNotFound, "missing"))
	assert.Equal(t, testCodeNotFound, coder.Code())
	assert.Equal(t, "Resource not found", coder.String())

	coder = ParseCoderByErr(WithCode(424242, "never registered"))
	assert.Equal(t, 1, coder.Code())
}

func TestRegister(t *testing.T) {
	assert.Panics(t, func() { Register(defaultCoder{C: 0}) })
	assert.Panics(t, func() { MustRegister(defaultCoder{C: testCodeNotFound}) })
	assert.NotPanics(t, func() { MustRegister(defaultCoder{C: 990003, HTTP: http.StatusBadRequest}) })

	assert.Equal(t, http.StatusInternalServerError, defaultCoder{C: 5}.HTTPStatus())
}

func TestAggregate(t *testing.T) {
	assert.Nil(t, NewAggregate(nil))
	assert.Nil(t, NewAggregate([]error{nil, nil}))

	agg := NewAggregate([]error{stderrors.New("a"), nil, stderrors.New("b"), stderrors.New("a")})
	require.NotNil(t, agg)
	assert.Equal(t, "[a, b]", agg.Error())
	assert.Len(t, agg.Errors(), 3)

	single := NewAggregate([]error{io.EOF})
	assert.Equal(t, io.EOF.Error(), single.Error())
	assert.True(t, single.Is(io.EOF))
}

func TestStackTraceFormat(t *testing.T) {
	st := callers().StackTrace()
	require.NotEmpty(t, st)
	assert.NotEmpty(t, fmt.Sprintf("%+v", st))
	assert.NotEmpty(t, callers().ToSlice())
}
