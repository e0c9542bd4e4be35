package core

import (
	"context"
	"fmt"
	"os"

	"github.com/oklog/run"
	"go.uber.org/zap"
)

// RunContext is a run group whose actors share one context. The context is
// cancelled as soon as any actor returns.
type RunContext struct {
	*run.Group
	context.Context

	cancel context.CancelFunc
}

func NewRunContext() *RunContext {
	ctx, cancel := context.WithCancel(context.Background())
	return &RunContext{
		Group:   &run.Group{},
		Context: ctx,
		cancel:  cancel,
	}
}

// AddTask adds f as an actor. f should return once its context is done.
func (rc *RunContext) AddTask(name string, f func(context.Context) error) {
	rc.Add(func() error {
		zap.L().Debug(fmt.Sprintf("starting %s", name))
		return f(rc.Context)
	}, func(err error) {
		zap.L().Debug(fmt.Sprintf("stopping %s", name))
		rc.cancel()
	})
}

// AddSignalHandler ends the group when one of sigs arrives.
func (rc *RunContext) AddSignalHandler(sigs ...os.Signal) {
	rc.Add(run.SignalHandler(rc.Context, sigs...))
}
