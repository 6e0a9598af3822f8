// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package shutdown

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualManager struct {
	gs       GSInterface
	started  bool
	finished bool
}

func (m *manualManager) GetName() string { return "manual" }

func (m *manualManager) Start(gs GSInterface) error {
	m.gs = gs
	m.started = true
	return nil
}

func (m *manualManager) ShutdownStart() error { return nil }

func (m *manualManager) ShutdownFinish() error {
	m.finished = true
	return errors.New("finish failed")
}

func TestGracefulShutdown(t *testing.T) {
	gs := New()
	m := &manualManager{}
	gs.AddShutdownManager(m)

	var calls int32
	for i := 0; i < 3; i++ {
		gs.AddShutdownCallback(ShutdownFunc(func(name string) error {
			assert.Equal(t, "manual", name)
			atomic.AddInt32(&calls, 1)
			return nil
		}))
	}
	gs.AddShutdownCallback(ShutdownFunc(func(string) error {
		return errors.New("callback failed")
	}))

	var mu sync.Mutex
	var reported []string
	gs.SetErrorHandler(ErrorFunc(func(err error) {
		mu.Lock()
		defer mu.Unlock()
		reported = append(reported, err.Error())
	}))

	require.NoError(t, gs.Start())
	assert.True(t, m.started)

	m.gs.StartShutdown(m)
	// 第二次触发无效
	m.gs.StartShutdown(m)

	select {
	case <-gs.Done():
	case <-time.After(time.Second):
		t.Fatal("shutdown did not finish")
	}

	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
	assert.True(t, m.finished)
	assert.ElementsMatch(t, []string{"callback failed", "finish failed"}, reported)
}
