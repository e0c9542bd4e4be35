//go:build unit
// +build unit

package core

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
)

func TestRunContextCancelsOtherTasks(t *testing.T) {
	rc := NewRunContext()
	stopped := make(chan struct{})
	rc.AddTask("waiter", func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return ctx.Err()
	})
	rc.AddTask("failing", func(context.Context) error {
		return errors.New("boom")
	})
	rc.AddSignalHandler(os.Interrupt)

	assert.EqualError(t, rc.Run(), "boom")
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("waiter was not stopped")
	}
}

func TestRunContextFinishedTask(t *testing.T) {
	rc := NewRunContext()
	rc.AddTask("done", func(context.Context) error { return nil })
	rc.AddSignalHandler(os.Interrupt)
	assert.NoError(t, rc.Run())
	assert.ErrorIs(t, rc.Err(), context.Canceled)
}
